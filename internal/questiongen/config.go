package questiongen

import "time"

// Config controls the LLMGateway.
type Config struct {
	// Validators run on every returned item in order; an item failing any
	// of them is dropped from the batch.
	Validators []Validator

	// Timeout bounds a single fetch. Zero disables the bound.
	Timeout time.Duration

	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard validator chain and limits.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&DistinctOptionsValidator{},
		},
		Timeout:     30 * time.Second,
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}
