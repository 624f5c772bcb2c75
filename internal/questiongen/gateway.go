// Package questiongen produces multiple-choice quiz questions, either from
// a text-generation provider or from a fixed offline set.
package questiongen

import (
	"go.uber.org/zap"

	"github.com/memoriaviva/memoria/internal/llm"
	"github.com/memoriaviva/memoria/internal/quiz"
)

// Gateway is the question capability consumed by the quiz engine. It never
// returns an error; failures produce an empty batch.
type Gateway = quiz.QuestionSource

// New selects the implementation once at construction: a nil provider
// means no credential is configured and yields the Placeholder gateway.
func New(provider llm.Provider, cfg Config, log *zap.SugaredLogger) Gateway {
	if provider == nil {
		return Placeholder{}
	}
	return NewLLMGateway(provider, cfg, log)
}
