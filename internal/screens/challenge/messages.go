package challenge

import (
	tea "charm.land/bubbletea/v2"

	"github.com/memoriaviva/memoria/internal/quiz"
)

// All challenge messages are broadcast so they still arrive while a modal
// from another tab covers the screen. run ties each one to the playthrough
// that issued it; messages from before a reset are dropped.

// batchReadyMsg carries the questions fetched for a level.
type batchReadyMsg struct {
	run       int
	questions []quiz.Question
}

// feedbackDueMsg fires when the answered pause is over.
type feedbackDueMsg struct {
	run        int
	questionID string
}

// resultSavedMsg reports the outcome of persisting a finished playthrough.
type resultSavedMsg struct {
	run int
	err error
}

// spinTickMsg wraps the spinner's own tick so it survives being covered.
type spinTickMsg struct {
	msg tea.Msg
}

func (batchReadyMsg) Broadcast()  {}
func (feedbackDueMsg) Broadcast() {}
func (resultSavedMsg) Broadcast() {}
func (spinTickMsg) Broadcast()    {}

func wrapSpin(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg { return spinTickMsg{msg: cmd()} }
}
