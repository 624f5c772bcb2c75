package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/memoriaviva/memoria/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and logging middleware. It returns ErrNoCredential when the selected
// provider has no API key so callers can pick the offline path.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo, log *zap.SugaredLogger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg)
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg)
	case ProviderMock:
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller → retry → logging → base
	logged := WithLogging(base, cfg.Provider, events, log)
	return WithRetry(logged, cfg.Retry, RetryLogger(log)), nil
}
