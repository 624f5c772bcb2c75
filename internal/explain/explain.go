// Package explain produces short educational texts about timeline events
// and concepts.
package explain

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/memoriaviva/memoria/internal/llm"
)

// Kind says whether a topic is a timeline event or a concept.
type Kind int

const (
	KindEvent Kind = iota
	KindConcept
)

func (k Kind) String() string {
	switch k {
	case KindEvent:
		return "event"
	case KindConcept:
		return "concept"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind accepts "event" or "concept".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "event", "":
		return KindEvent, nil
	case "concept":
		return KindConcept, nil
	}
	return 0, fmt.Errorf("unknown explanation kind %q", s)
}

// Fixed texts returned in place of generated content.
const (
	MsgEmpty        = "No se pudo generar la explicación."
	MsgUnavailable  = "Error al conectar con el servicio de IA."
	placeholderText = "Detalle simulado para: %s. (Configura la API Key para contenido real)."
)

// Gateway returns an explanation for a topic. It never fails; problems are
// reported through fixed user-facing texts.
type Gateway interface {
	FetchExplanation(ctx context.Context, topic string, kind Kind) string
}

// New picks the implementation once: a nil provider yields Placeholder.
func New(provider llm.Provider, cfg Config, log *zap.SugaredLogger) Gateway {
	if provider == nil {
		return Placeholder{}
	}
	return NewLLMGateway(provider, cfg, log)
}

// Placeholder answers without any network access.
type Placeholder struct{}

func (Placeholder) FetchExplanation(_ context.Context, topic string, _ Kind) string {
	return fmt.Sprintf(placeholderText, topic)
}
