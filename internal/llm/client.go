package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/cenkalti/backoff/v4"
)

// Client is the gateway contract. Chat sends one conversation and
// returns the chosen completion's text content verbatim, or a
// *GatewayError. Implementations must be safe for concurrent use.
type Client interface {
	Chat(ctx context.Context, conv Conversation) (string, error)
	Close() error
}

// NewClient creates a gateway client for the configured provider.
func NewClient(ctx context.Context, cfg *Config) (Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	switch cfg.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, cfg)
	case ProviderOpenAI, "":
		return NewOpenAIClient(cfg)
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

// withRetry runs op, retrying transient gateway failures with
// exponential backoff up to maxRetries additional attempts. op must
// return *GatewayError (or backoff.Permanent) on failure.
func withRetry(ctx context.Context, maxRetries uint64, op backoff.Operation) error {
	if maxRetries == 0 {
		err := op()
		var perm *backoff.PermanentError
		if errors.As(err, &perm) {
			return perm.Err
		}
		return err
	}

	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)
	return backoff.Retry(op, b)
}

// retryable wraps a classified failure so that only transient kinds
// are retried.
func retryable(gerr *GatewayError) error {
	if gerr.transient() {
		return gerr
	}
	return backoff.Permanent(gerr)
}
