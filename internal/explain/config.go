package explain

import "time"

// Config controls the LLMGateway.
type Config struct {
	Timeout     time.Duration
	MaxTokens   int
	Temperature float64
}

func DefaultConfig() Config {
	return Config{
		Timeout:     30 * time.Second,
		MaxTokens:   1024,
		Temperature: 0.4,
	}
}
