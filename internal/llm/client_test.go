package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatewayErrorMessages(t *testing.T) {
	err := &GatewayError{Kind: KindService, StatusCode: 503, Message: "overloaded"}
	assert.Equal(t, "gateway: service error 503: overloaded", err.Error())

	err = &GatewayError{Kind: KindTimeout, Message: "deadline exceeded"}
	assert.Equal(t, "gateway: timeout: deadline exceeded", err.Error())
}

func TestTransient(t *testing.T) {
	tests := []struct {
		name string
		err  *GatewayError
		want bool
	}{
		{"timeout", &GatewayError{Kind: KindTimeout}, true},
		{"unreachable", &GatewayError{Kind: KindUnreachable}, true},
		{"rate limited", &GatewayError{Kind: KindService, StatusCode: 429}, true},
		{"server error", &GatewayError{Kind: KindService, StatusCode: 500}, true},
		{"bad request", &GatewayError{Kind: KindService, StatusCode: 400}, false},
		{"unauthorized", &GatewayError{Kind: KindService, StatusCode: 401}, false},
		{"empty response", &GatewayError{Kind: KindEmptyResponse}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.transient())
		})
	}
}

func TestWithRetryRetriesTransientFailures(t *testing.T) {
	attempts := 0
	err := withRetry(context.Background(), 3, func() error {
		attempts++
		if attempts < 3 {
			return retryable(&GatewayError{Kind: KindService, StatusCode: 500, Message: "flap"})
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestWithRetryStopsOnPermanentFailure(t *testing.T) {
	attempts := 0
	err := withRetry(context.Background(), 3, func() error {
		attempts++
		return retryable(&GatewayError{Kind: KindService, StatusCode: 401, Message: "bad key"})
	})

	var gerr *GatewayError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, 401, gerr.StatusCode)
	assert.Equal(t, 1, attempts)
}

func TestWithRetryZeroRetriesRunsOnce(t *testing.T) {
	attempts := 0
	err := withRetry(context.Background(), 0, func() error {
		attempts++
		return retryable(&GatewayError{Kind: KindTimeout, Message: "slow"})
	})

	var gerr *GatewayError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, KindTimeout, gerr.Kind)
	assert.Equal(t, 1, attempts)
}

func TestNewClientUnknownProvider(t *testing.T) {
	_, err := NewClient(context.Background(), &Config{Provider: "carrier-pigeon"})
	assert.Error(t, err)
}

func TestConversationShape(t *testing.T) {
	conv := NewConversation("sys", "usr")
	require.Len(t, conv, 2)
	assert.Equal(t, RoleSystem, conv[0].Role)
	assert.Equal(t, "sys", conv[0].Content)
	assert.Equal(t, RoleUser, conv[1].Role)
}

func TestConfigFallbacks(t *testing.T) {
	cfg := &Config{Provider: ProviderOpenAI}
	out := cfg.withFallbacks(DefaultOpenAIModel)
	assert.Equal(t, DefaultOpenAIModel, out.Model)
	assert.InDelta(t, 0.7, out.Temperature, 1e-9)
	assert.Positive(t, out.Timeout)

	cfg = &Config{Model: "custom", Temperature: 0.2}
	out = cfg.withFallbacks(DefaultOpenAIModel)
	assert.Equal(t, "custom", out.Model)
	assert.InDelta(t, 0.2, out.Temperature, 1e-9)
}
