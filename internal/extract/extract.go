// Package extract normalizes raw completions into the shapes stage
// operations expect. It is the single place that tolerates the
// generation service wrapping JSON in code fences or prose; every
// stage result passes through it.
package extract

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/arno/linkedin-post-agent/internal/schemas"
)

// Kind classifies an extraction failure.
type Kind string

// Extraction failure classifications
const (
	KindEmpty          Kind = "empty"
	KindInvalidJSON    Kind = "invalid_json"
	KindMissingField   Kind = "missing_field"
	KindSchemaMismatch Kind = "schema_mismatch"
)

// excerptLimit bounds how much raw completion text an error carries.
const excerptLimit = 160

// Error indicates a completion did not match the stage's declared
// response contract. It carries the stage name and a bounded excerpt
// of the raw completion for diagnosis.
type Error struct {
	Stage   string
	Kind    Kind
	Field   string // set for KindMissingField
	Excerpt string
	Cause   error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindMissingField:
		return "extract " + e.Stage + ": response missing field " + strconv.Quote(e.Field)
	default:
		return "extract " + e.Stage + ": " + string(e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// AsError returns the *Error inside err, if any.
func AsError(err error) (*Error, bool) {
	var ee *Error
	ok := errors.As(err, &ee)
	return ee, ok
}

// Text extracts a plain-text result: the trimmed completion. An empty
// result is an extraction failure, not an empty success.
func Text(stage, raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", &Error{Stage: stage, Kind: KindEmpty, Excerpt: excerpt(raw)}
	}
	return trimmed, nil
}

// UnwrapFence strips an optional fenced code block. If the trimmed
// text opens with ``` and a closing ``` occurs after the first line
// break, the content between them (trimmed) is returned; otherwise the
// whole trimmed text is.
func UnwrapFence(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	firstNewline := strings.IndexByte(trimmed, '\n')
	lastFence := strings.LastIndex(trimmed, "```")
	if firstNewline == -1 || lastFence <= firstNewline {
		return trimmed
	}

	return strings.TrimSpace(trimmed[firstNewline+1 : lastFence])
}

// Candidate returns the JSON candidate text for a structured
// completion, or an error when it is empty or not valid JSON.
func Candidate(stage, raw string) (string, error) {
	candidate := UnwrapFence(raw)
	if candidate == "" {
		return "", &Error{Stage: stage, Kind: KindEmpty, Excerpt: excerpt(raw)}
	}
	if !json.Valid([]byte(candidate)) {
		return "", &Error{Stage: stage, Kind: KindInvalidJSON, Excerpt: excerpt(raw)}
	}
	return candidate, nil
}

// Field looks up a required named field in a structured completion.
// Absence of the field is a distinct failure from invalid JSON.
func Field(stage, raw, name string) (gjson.Result, error) {
	candidate, err := Candidate(stage, raw)
	if err != nil {
		return gjson.Result{}, err
	}

	res := gjson.Get(candidate, name)
	if !res.Exists() {
		return gjson.Result{}, &Error{Stage: stage, Kind: KindMissingField, Field: name, Excerpt: excerpt(raw)}
	}
	return res, nil
}

// FieldObject extracts a required named field and deserializes it into
// out. A shape mismatch in the field value is KindSchemaMismatch.
func FieldObject(stage, raw, name string, out any) error {
	res, err := Field(stage, raw, name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(res.Raw), out); err != nil {
		return &Error{Stage: stage, Kind: KindSchemaMismatch, Excerpt: excerpt(raw), Cause: err}
	}
	return nil
}

// Object validates a structured completion against the named embedded
// schema and deserializes it into out. Contract violations and
// deserialization failures are both KindSchemaMismatch.
func Object(stage, raw, schemaName string, out any) error {
	candidate, err := Candidate(stage, raw)
	if err != nil {
		return err
	}

	if err := schemas.Validate(schemaName, []byte(candidate)); err != nil {
		var verr *schemas.ValidationError
		if errors.As(err, &verr) {
			return &Error{Stage: stage, Kind: KindSchemaMismatch, Excerpt: excerpt(raw), Cause: verr}
		}
		return err
	}

	if err := json.Unmarshal([]byte(candidate), out); err != nil {
		return &Error{Stage: stage, Kind: KindSchemaMismatch, Excerpt: excerpt(raw), Cause: err}
	}
	return nil
}

// excerpt bounds raw completion text for error reporting.
func excerpt(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) > excerptLimit {
		return trimmed[:excerptLimit] + "..."
	}
	return trimmed
}
