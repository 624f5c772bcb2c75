package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/memoriaviva/memoria/internal/screen"
)

// stubScreen records what it receives.
type stubScreen struct {
	title   string
	initRan bool
	got     []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

type localMsg struct{}

type everyoneMsg struct{}

func (everyoneMsg) Broadcast() {}

func TestPushPop(t *testing.T) {
	tabs := &stubScreen{title: "tabs"}
	r := New(tabs)

	modal := &stubScreen{title: "modal"}
	r.Update(PushScreenMsg{Screen: modal})

	if r.Depth() != 2 || r.Active() != modal {
		t.Fatalf("expected modal on top, depth %d", r.Depth())
	}
	if !modal.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
	if r.Root() != tabs {
		t.Error("root should stay the first screen")
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 || r.Active() != tabs {
		t.Errorf("expected tabs active after pop, depth %d", r.Depth())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "tabs"})
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	r := New(&stubScreen{title: "tabs"})
	r.Push(&stubScreen{title: "modal A"})

	b := &stubScreen{title: "modal B"}
	r.Update(ReplaceScreenMsg{Screen: b})

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active() != b || !b.initRan {
		t.Error("expected replaced modal active and initialised")
	}
}

func TestUpdateGoesToActiveOnly(t *testing.T) {
	tabs := &stubScreen{title: "tabs"}
	r := New(tabs)
	modal := &stubScreen{title: "modal"}
	r.Push(modal)

	r.Update(localMsg{})

	if len(tabs.got) != 0 {
		t.Errorf("covered screen received %d messages", len(tabs.got))
	}
	if len(modal.got) != 1 {
		t.Errorf("active screen received %d messages", len(modal.got))
	}
}

func TestBroadcastReachesWholeStack(t *testing.T) {
	tabs := &stubScreen{title: "tabs"}
	r := New(tabs)
	modal := &stubScreen{title: "modal"}
	r.Push(modal)

	r.Update(everyoneMsg{})

	if len(tabs.got) != 1 || len(modal.got) != 1 {
		t.Errorf("expected both screens to receive the broadcast, got %d and %d", len(tabs.got), len(modal.got))
	}
}

func TestView(t *testing.T) {
	r := New(&stubScreen{title: "tabs"})
	if got := r.View(80, 24); got != "tabs" {
		t.Errorf("unexpected view %q", got)
	}
}
