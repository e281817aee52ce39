// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/arno/linkedin-post-agent/internal/llm"
)

// Config holds everything the process needs to start.
type Config struct {
	Port     int
	LogLevel string
	LLM      llm.Config
}

// FromEnv reads configuration from environment variables, applying
// defaults for anything unset. The provider API key is resolved per
// provider; a missing key is reported here rather than on the first
// request.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:     8080,
		LogLevel: envOr("LOG_LEVEL", "info"),
		LLM:      *llm.DefaultConfig(),
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 {
			return nil, fmt.Errorf("config: invalid PORT %q", v)
		}
		cfg.Port = port
	}

	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		switch llm.Provider(v) {
		case llm.ProviderOpenAI, llm.ProviderGemini:
			cfg.LLM.Provider = llm.Provider(v)
		default:
			return nil, fmt.Errorf("config: unknown LLM_PROVIDER %q", v)
		}
	}

	switch cfg.LLM.Provider {
	case llm.ProviderGemini:
		cfg.LLM.Model = envOr("LLM_MODEL", llm.DefaultGeminiModel)
		cfg.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("config: GEMINI_API_KEY is required")
		}
	default:
		cfg.LLM.Model = envOr("LLM_MODEL", envOr("OPENAI_MODEL", llm.DefaultOpenAIModel))
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		cfg.LLM.BaseURL = os.Getenv("OPENAI_BASE_URL")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("config: OPENAI_API_KEY is required")
		}
	}

	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("config: invalid LLM_TIMEOUT %q", v)
		}
		cfg.LLM.Timeout = d
	}

	if v := os.Getenv("LLM_MAX_RETRIES"); v != "" {
		n, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("config: invalid LLM_MAX_RETRIES %q", v)
		}
		cfg.LLM.MaxRetries = n
	}

	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil || t < 0 || t > 2 {
			return nil, fmt.Errorf("config: invalid LLM_TEMPERATURE %q", v)
		}
		cfg.LLM.Temperature = t
	}

	return cfg, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
