package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/memoriaviva/memoria/internal/screen"
	"github.com/memoriaviva/memoria/internal/ui/layout"
)

// stubScreen records messages and can pretend to capture text input.
type stubScreen struct {
	name      string
	got       []tea.Msg
	capturing bool
}

func (s *stubScreen) Init() tea.Cmd { return nil }
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string { return "content of " + s.name }
func (s *stubScreen) Title() string        { return s.name }
func (s *stubScreen) Capturing() bool      { return s.capturing }
func (s *stubScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "X", Description: s.name}}
}

type asyncMsg struct{}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newTestHome() (*HomeScreen, []*stubScreen) {
	stubs := []*stubScreen{{name: "Línea de Tiempo"}, {name: "Conceptos"}, {name: "Desafío"}, {name: "Podcast"}}
	tabs := make([]Tab, len(stubs))
	for i, s := range stubs {
		tabs[i] = Tab{Label: s.name, Screen: s}
	}
	return New(tabs...), stubs
}

func TestHome_TabSwitching(t *testing.T) {
	h, _ := newTestHome()

	h.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if h.Active() != 1 {
		t.Errorf("tab: expected 1, got %d", h.Active())
	}
	h.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if h.Active() != 0 {
		t.Errorf("shift+tab: expected 0, got %d", h.Active())
	}
	h.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if h.Active() != 3 {
		t.Errorf("shift+tab wraps: expected 3, got %d", h.Active())
	}
	h.Update(keyPress('3'))
	if h.Active() != 2 || h.Title() != "Desafío" {
		t.Errorf("digit: expected Desafío, got %d %q", h.Active(), h.Title())
	}
	h.Update(keyPress('9'))
	if h.Active() != 2 {
		t.Errorf("out of range digit should be ignored, got %d", h.Active())
	}
}

func TestHome_KeysGoToActiveTabOnly(t *testing.T) {
	h, stubs := newTestHome()
	h.Select(2)
	h.Update(keyPress('a'))

	for i, s := range stubs {
		want := 0
		if i == 2 {
			want = 1
		}
		if len(s.got) != want {
			t.Errorf("tab %d got %d messages, want %d", i, len(s.got), want)
		}
	}
}

func TestHome_OtherMessagesReachAllTabs(t *testing.T) {
	h, stubs := newTestHome()
	h.Update(asyncMsg{})
	for i, s := range stubs {
		if len(s.got) != 1 {
			t.Errorf("tab %d got %d messages, want 1", i, len(s.got))
		}
	}
}

func TestHome_CapturingTabKeepsDigits(t *testing.T) {
	h, stubs := newTestHome()
	h.Select(3)
	stubs[3].capturing = true

	h.Update(keyPress('1'))
	if h.Active() != 3 {
		t.Fatal("digits typed into a text field must not switch tabs")
	}
	if len(stubs[3].got) != 1 {
		t.Error("capturing tab should receive the key")
	}
	for _, hint := range h.KeyHints() {
		if hint.Key == "Tab" {
			t.Error("tab hint hidden while capturing")
		}
	}
}

func TestHome_View(t *testing.T) {
	h, _ := newTestHome()
	h.Select(1)
	view := h.View(100, 30)
	for _, want := range []string{"Línea de Tiempo", "Conceptos", "Desafío", "Podcast", "content of Conceptos"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
