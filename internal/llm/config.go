package llm

import "time"

// Provider identifies a text-generation provider.
type Provider string

// Supported providers
const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)

// Config holds provider selection and per-call behavior for the
// gateway. Retry policy lives here, on the gateway side of the
// contract; the pipeline itself never retries.
type Config struct {
	Provider    Provider
	Model       string
	APIKey      string
	BaseURL     string // optional override, OpenAI-compatible endpoints
	Temperature float64
	Timeout     time.Duration // per-attempt bound on one completion call
	MaxRetries  uint64        // additional attempts for transient failures
}

// Default models per provider
const (
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultGeminiModel = "gemini-2.5-flash"
)

// DefaultConfig returns the default gateway configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider:    ProviderOpenAI,
		Model:       DefaultOpenAIModel,
		Temperature: 0.7,
		Timeout:     30 * time.Second,
		MaxRetries:  2,
	}
}

func (c *Config) withFallbacks(defaultModel string) *Config {
	out := *c
	if out.Model == "" {
		out.Model = defaultModel
	}
	if out.Temperature == 0 {
		out.Temperature = 0.7
	}
	if out.Timeout <= 0 {
		out.Timeout = 30 * time.Second
	}
	return &out
}
