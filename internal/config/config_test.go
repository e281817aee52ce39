package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arno/linkedin-post-agent/internal/llm"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "LLM_PROVIDER", "LLM_MODEL", "OPENAI_MODEL",
		"OPENAI_API_KEY", "OPENAI_BASE_URL", "GEMINI_API_KEY",
		"LLM_TIMEOUT", "LLM_MAX_RETRIES", "LLM_TEMPERATURE",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, llm.ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, llm.DefaultOpenAIModel, cfg.LLM.Model)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, uint64(2), cfg.LLM.MaxRetries)
}

func TestFromEnvMissingKey(t *testing.T) {
	clearEnv(t)

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LLM_MODEL", "gpt-4o")
	t.Setenv("LLM_TIMEOUT", "45s")
	t.Setenv("LLM_MAX_RETRIES", "4")
	t.Setenv("LLM_TEMPERATURE", "0.3")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.Equal(t, 45*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, uint64(4), cfg.LLM.MaxRetries)
	assert.InDelta(t, 0.3, cfg.LLM.Temperature, 1e-9)
}

func TestFromEnvGemini(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "g-test")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, llm.DefaultGeminiModel, cfg.LLM.Model)
	assert.Equal(t, "g-test", cfg.LLM.APIKey)
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad port", "PORT", "not-a-port"},
		{"negative port", "PORT", "-1"},
		{"unknown provider", "LLM_PROVIDER", "anthropic-llama"},
		{"bad timeout", "LLM_TIMEOUT", "soon"},
		{"bad retries", "LLM_MAX_RETRIES", "-3"},
		{"bad temperature", "LLM_TEMPERATURE", "11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("OPENAI_API_KEY", "sk-test")
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}
