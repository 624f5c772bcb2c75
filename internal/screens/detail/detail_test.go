package detail

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/memoriaviva/memoria/internal/explain"
)

// stubGateway returns a fixed text and counts calls.
type stubGateway struct {
	text  string
	calls int
}

func (g *stubGateway) FetchExplanation(_ context.Context, topic string, kind explain.Kind) string {
	g.calls++
	return g.text + " " + topic + " " + kind.String()
}

func runFetch(t *testing.T, d *DetailScreen) ResultMsg {
	t.Helper()
	msg := d.fetch()()
	res, ok := msg.(ResultMsg)
	if !ok {
		t.Fatalf("expected ResultMsg, got %T", msg)
	}
	return res
}

func TestDetail_LoadsExplanation(t *testing.T) {
	gw := &stubGateway{text: "Explicación"}
	d := New(gw, Topic{Name: "Golpe de Estado", Subtitle: "Septiembre 1973", Kind: explain.KindEvent})

	if !d.Loading() {
		t.Fatal("expected loading before the result arrives")
	}
	if !strings.Contains(d.View(100, 30), "Consultando") {
		t.Error("loading view should show the spinner text")
	}

	res := runFetch(t, d)
	if res.RequestID != d.RequestID() {
		t.Errorf("result id %q does not match modal id %q", res.RequestID, d.RequestID())
	}
	d.Update(res)

	if d.Loading() {
		t.Fatal("expected loaded")
	}
	if d.Text() != "Explicación Golpe de Estado event" {
		t.Errorf("unexpected text %q", d.Text())
	}
	view := d.View(100, 30)
	if !strings.Contains(view, "Golpe de Estado") || !strings.Contains(view, "Septiembre 1973") {
		t.Errorf("view missing topic or subtitle:\n%s", view)
	}
}

func TestDetail_DiscardsStaleResult(t *testing.T) {
	gw := &stubGateway{text: "x"}
	first := New(gw, Topic{Name: "DINA", Kind: explain.KindConcept})
	second := New(gw, Topic{Name: "Exilio", Kind: explain.KindConcept})

	stale := runFetch(t, first)
	second.Update(stale)

	if !second.Loading() {
		t.Fatal("a result for another modal must not be shown")
	}
	if second.Text() != "" {
		t.Errorf("unexpected text %q", second.Text())
	}
}

func TestDetail_IgnoresDuplicateResult(t *testing.T) {
	d := New(&stubGateway{text: "x"}, Topic{Name: "Plebiscito"})
	d.Update(ResultMsg{RequestID: d.RequestID(), Text: "primero"})
	d.Update(ResultMsg{RequestID: d.RequestID(), Text: "segundo"})
	if d.Text() != "primero" {
		t.Errorf("expected first result kept, got %q", d.Text())
	}
}

func TestDetail_UniqueRequestIDs(t *testing.T) {
	gw := &stubGateway{}
	a := New(gw, Topic{Name: "A"})
	b := New(gw, Topic{Name: "A"})
	if a.RequestID() == b.RequestID() {
		t.Error("each modal needs its own request id")
	}
}

func TestDetail_KeysIgnoredWhileLoading(t *testing.T) {
	d := New(&stubGateway{}, Topic{Name: "A"})
	_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if cmd != nil {
		t.Error("expected no command while loading")
	}
}

func TestDetail_KindLabel(t *testing.T) {
	d := New(&stubGateway{}, Topic{Name: "Exilio", Kind: explain.KindConcept})
	if !strings.Contains(d.View(100, 30), "CONCEPTO") {
		t.Error("concept modal should be labelled")
	}
}
