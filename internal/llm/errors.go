package llm

import "fmt"

// ErrorKind classifies a gateway failure.
type ErrorKind string

// Gateway failure classifications
const (
	KindTimeout       ErrorKind = "timeout"
	KindUnreachable   ErrorKind = "unreachable"
	KindService       ErrorKind = "service_error"
	KindEmptyResponse ErrorKind = "empty_response"
)

// GatewayError indicates the generation provider failed to produce
// usable output. It is fatal to the current stage and aborts the full
// pipeline; the core never retries it.
type GatewayError struct {
	Kind       ErrorKind
	StatusCode int // set for KindService
	Message    string
	Cause      error
}

func (e *GatewayError) Error() string {
	switch e.Kind {
	case KindService:
		return fmt.Sprintf("gateway: service error %d: %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("gateway: %s: %s", e.Kind, e.Message)
	}
}

func (e *GatewayError) Unwrap() error { return e.Cause }

// transient reports whether a retry inside the gateway could succeed.
// Rate limits and 5xx responses are transient; anything else is not.
func (e *GatewayError) transient() bool {
	switch e.Kind {
	case KindTimeout, KindUnreachable:
		return true
	case KindService:
		return e.StatusCode == 429 || e.StatusCode >= 500
	default:
		return false
	}
}
