package llm

import (
	"errors"
	"testing"
)

func TestNewOpenRouterProvider(t *testing.T) {
	t.Run("default model", func(t *testing.T) {
		p, err := NewOpenRouterProvider(Config{Provider: ProviderOpenRouter, APIKey: "sk-or-test"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "google/gemini-2.5-flash" {
			t.Errorf("model = %q, want google/gemini-2.5-flash", p.ModelID())
		}
	})

	t.Run("empty API key", func(t *testing.T) {
		_, err := NewOpenRouterProvider(Config{Provider: ProviderOpenRouter})
		if !errors.Is(err, ErrNoCredential) {
			t.Fatalf("expected ErrNoCredential, got %v", err)
		}
	})

	t.Run("model pass-through", func(t *testing.T) {
		p, err := NewOpenRouterProvider(Config{
			Provider: ProviderOpenRouter,
			APIKey:   "sk-or-test",
			Model:    "anthropic/claude-3-haiku",
			BaseURL:  "https://custom.openrouter.example/v1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "anthropic/claude-3-haiku" {
			t.Errorf("model = %q, want anthropic/claude-3-haiku", p.ModelID())
		}
	})
}
