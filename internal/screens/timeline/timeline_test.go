package timeline

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/memoriaviva/memoria/internal/catalog"
	"github.com/memoriaviva/memoria/internal/explain"
	"github.com/memoriaviva/memoria/internal/router"
	"github.com/memoriaviva/memoria/internal/screens/detail"
)

type nopGateway struct{}

func (nopGateway) FetchExplanation(context.Context, string, explain.Kind) string { return "" }

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestTimeline_RendersEvents(t *testing.T) {
	s := New(catalog.Default().Events(), nopGateway{})
	view := s.View(100, 40)
	if !strings.Contains(view, "1973") || !strings.Contains(view, "El Golpe de Estado") {
		t.Errorf("view missing first event:\n%s", view)
	}
}

func TestTimeline_EnterOpensEventModal(t *testing.T) {
	events := catalog.Default().Events()
	s := New(events, nopGateway{})

	s.Update(specialKey(tea.KeyDown))
	if s.Selected().Title != events[1].Title {
		t.Fatalf("expected second event selected, got %q", s.Selected().Title)
	}

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	modal, ok := push.Screen.(*detail.DetailScreen)
	if !ok {
		t.Fatalf("expected detail modal, got %T", push.Screen)
	}
	if modal.Title() != events[1].Title {
		t.Errorf("modal for wrong event: %q", modal.Title())
	}
}

func TestTimeline_Empty(t *testing.T) {
	s := New(nil, nopGateway{})
	if !strings.Contains(s.View(80, 20), "Sin hitos") {
		t.Error("expected empty message")
	}
}
