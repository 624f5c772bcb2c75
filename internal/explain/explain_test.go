package explain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/memoriaviva/memoria/internal/llm"
)

func TestNew_NilProviderIsPlaceholder(t *testing.T) {
	gw := New(nil, DefaultConfig(), nil)
	got := gw.FetchExplanation(context.Background(), "Plebiscito de 1988", KindEvent)
	want := "Detalle simulado para: Plebiscito de 1988. (Configura la API Key para contenido real)."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNew_ProviderSelectsLLMGateway(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "El exilio afectó a miles de chilenos."})
	gw := New(mock, DefaultConfig(), nil)
	if _, ok := gw.(*LLMGateway); !ok {
		t.Fatalf("expected *LLMGateway, got %T", gw)
	}
	if got := gw.FetchExplanation(context.Background(), "Exilio", KindConcept); got != "El exilio afectó a miles de chilenos." {
		t.Errorf("unexpected text %q", got)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 provider call, got %d", mock.CallCount())
	}
}

func TestLLMGateway_Prompts(t *testing.T) {
	tests := []struct {
		kind Kind
		want []string
	}{
		{KindEvent, []string{`"Golpe de Estado"`, "causas, desarrollo y consecuencias", "Máximo 150 palabras"}},
		{KindConcept, []string{`"Golpe de Estado"`, "relevancia histórica y social", "Máximo 100 palabras"}},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Text: "Texto."})
			NewLLMGateway(mock, DefaultConfig(), nil).FetchExplanation(context.Background(), "Golpe de Estado", tt.kind)

			req := mock.Calls[0]
			if req.Schema != nil {
				t.Error("explanations are free text")
			}
			for _, w := range tt.want {
				if !strings.Contains(req.Messages[0].Content, w) {
					t.Errorf("prompt missing %q: %s", w, req.Messages[0].Content)
				}
			}
		})
	}
}

func TestLLMGateway_Results(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
		want string
	}{
		{"verbatim", llm.MockResponse{Text: "  El 11 de septiembre...\n"}, "  El 11 de septiembre...\n"},
		{"empty", llm.MockResponse{Text: "   "}, MsgEmpty},
		{"error", llm.MockResponse{Err: errors.New("dial tcp: timeout")}, MsgUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := NewLLMGateway(llm.NewMockProvider(tt.resp), DefaultConfig(), nil)
			if got := gw.FetchExplanation(context.Background(), "DINA", KindConcept); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{"event": KindEvent, "Concept": KindConcept, "": KindEvent} {
		got, err := ParseKind(in)
		if err != nil || got != want {
			t.Errorf("ParseKind(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseKind("person"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

// countingGateway records concurrency.
type countingGateway struct {
	mu       sync.Mutex
	inFlight int
	peak     int
	calls    atomic.Int32
	release  chan struct{}
}

func (g *countingGateway) FetchExplanation(_ context.Context, topic string, kind Kind) string {
	g.calls.Add(1)
	g.mu.Lock()
	g.inFlight++
	g.peak = max(g.peak, g.inFlight)
	g.mu.Unlock()

	<-g.release

	g.mu.Lock()
	g.inFlight--
	g.mu.Unlock()
	return fmt.Sprintf("%s/%s", kind, topic)
}

func TestFetchAll_OrderAndLimit(t *testing.T) {
	gw := &countingGateway{release: make(chan struct{})}
	close(gw.release)

	topics := []Topic{
		{"Golpe de Estado", KindEvent},
		{"DINA", KindConcept},
		{"Plebiscito", KindEvent},
		{"Exilio", KindConcept},
		{"Constitución de 1980", KindEvent},
	}
	results, err := FetchAll(context.Background(), gw, topics, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != len(topics) {
		t.Fatalf("expected %d results, got %d", len(topics), len(results))
	}
	for i, r := range results {
		want := fmt.Sprintf("%s/%s", topics[i].Kind, topics[i].Name)
		if r.Text != want || r.Topic != topics[i] {
			t.Errorf("result %d = %+v, want %q", i, r, want)
		}
	}
	if gw.peak > 2 {
		t.Errorf("peak concurrency %d exceeds limit 2", gw.peak)
	}
}

func TestFetchAll_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	gw := &countingGateway{release: make(chan struct{})}
	close(gw.release)

	_, err := FetchAll(ctx, gw, []Topic{{"DINA", KindConcept}}, 1)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if gw.calls.Load() != 0 {
		t.Errorf("expected no calls after cancellation, got %d", gw.calls.Load())
	}
}
