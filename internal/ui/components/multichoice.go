package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/memoriaviva/memoria/internal/quiz"
	"github.com/memoriaviva/memoria/internal/ui/theme"
)

// MultiChoice renders the four options of a question and reads a choice.
// Once Submitted it ignores input; Reveal colours the correct and chosen
// options.
type MultiChoice struct {
	Options      [quiz.NumOptions]string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
	Revealed     bool
}

// NewMultiChoice creates a selector for q.
func NewMultiChoice(q quiz.Question) MultiChoice {
	return MultiChoice{
		Options:      q.Options,
		CorrectIndex: q.CorrectIndex,
		ChosenIndex:  -1,
	}
}

// Update moves the cursor and submits on enter or an option letter.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.choose(m.Selected)
	case "a", "b", "c", "d":
		m.choose(int(key[0] - 'a'))
	}

	return m, nil
}

func (m *MultiChoice) choose(i int) {
	m.Selected = i
	m.ChosenIndex = i
	m.Submitted = true
}

// View renders the options, wrapped to width.
func (m MultiChoice) View(width int) string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, quiz.OptionLabel(i), opt)

		var style lipgloss.Style
		switch {
		case m.Revealed && i == m.CorrectIndex:
			style = theme.Correct
		case m.Revealed && i == m.ChosenIndex:
			style = theme.Incorrect
		case m.Revealed:
			style = theme.Dimmed
		case m.Submitted && i == m.ChosenIndex:
			style = theme.Selected
		case !m.Submitted && i == m.Selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Width(width).Render(line))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// IsCorrect returns true if the chosen option is the correct one.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenIndex == m.CorrectIndex
}
