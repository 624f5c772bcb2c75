package explain

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/memoriaviva/memoria/internal/llm"
)

// LLMGateway generates explanations with a provider. It holds no mutable
// state and is safe for concurrent use.
type LLMGateway struct {
	provider llm.Provider
	config   Config
	log      *zap.SugaredLogger
}

func NewLLMGateway(provider llm.Provider, cfg Config, log *zap.SugaredLogger) *LLMGateway {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &LLMGateway{provider: provider, config: cfg, log: log}
}

// FetchExplanation returns the provider's text verbatim.
func (g *LLMGateway) FetchExplanation(ctx context.Context, topic string, kind Kind) string {
	ctx = llm.WithPurpose(ctx, llm.PurposeExplanation)
	if g.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.config.Timeout)
		defer cancel()
	}

	req := llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildPrompt(topic, kind)}},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		g.log.Warnw("explanation failed", "topic", topic, "kind", kind.String(), "error", err)
		return MsgUnavailable
	}
	if strings.TrimSpace(resp.Text) == "" {
		g.log.Infow("explanation empty", "topic", topic, "kind", kind.String())
		return MsgEmpty
	}
	return resp.Text
}
