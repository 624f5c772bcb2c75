package llm

import (
	"fmt"
	"time"
)

// Provider names accepted by NewProvider.
const (
	ProviderGemini     = "gemini"
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config selects and configures one provider.
type Config struct {
	Provider string
	APIKey   string

	// Model is a friendly name or a vendor model ID. Empty selects the
	// provider default.
	Model string

	// BaseURL overrides the endpoint for OpenAI-compatible providers.
	BaseURL string

	MaxTokens int

	Retry RetryConfig
}

// RetryConfig configures retry behavior for transient failures.
// MaxAttempts of 1 means a single attempt with no retry.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// defaultModels is the model used when Config.Model is empty.
var defaultModels = map[string]string{
	ProviderGemini:     "gemini-2.5-flash",
	ProviderAnthropic:  "claude-haiku",
	ProviderOpenAI:     "gpt-4o-mini",
	ProviderOpenRouter: "google/gemini-2.5-flash",
}

// DefaultConfig returns a Gemini config with a single attempt per call.
func DefaultConfig() Config {
	return Config{
		Provider:  ProviderGemini,
		MaxTokens: 4096,
		Retry: RetryConfig{
			MaxAttempts: 1,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// ResolvedModel returns the configured model or the provider default.
func (c Config) ResolvedModel() string {
	if c.Model != "" {
		return c.Model
	}
	return defaultModels[c.Provider]
}

// Validate checks the provider name and reports ErrNoCredential when a
// real provider has no API key.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderGemini, ProviderAnthropic, ProviderOpenAI, ProviderOpenRouter:
		if c.APIKey == "" {
			return ErrNoCredential
		}
	case ProviderMock:
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
