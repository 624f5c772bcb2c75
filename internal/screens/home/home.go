// Package home is the root screen: a tab bar over the four sections.
package home

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/memoriaviva/memoria/internal/screen"
	"github.com/memoriaviva/memoria/internal/ui/layout"
)

// Tab is one section of the app.
type Tab struct {
	Label  string
	Screen screen.Screen
}

// HomeScreen switches between tabs. Key presses go to the active tab only;
// every other message reaches all tabs so background work keeps flowing
// while the player looks elsewhere.
type HomeScreen struct {
	tabs   []Tab
	active int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.InputCapturer = (*HomeScreen)(nil)

func New(tabs ...Tab) *HomeScreen {
	return &HomeScreen{tabs: tabs}
}

func (h *HomeScreen) Init() tea.Cmd {
	cmds := make([]tea.Cmd, len(h.tabs))
	for i, t := range h.tabs {
		cmds[i] = t.Screen.Init()
	}
	return tea.Batch(cmds...)
}

func (h *HomeScreen) Title() string {
	if len(h.tabs) == 0 {
		return ""
	}
	return h.tabs[h.active].Label
}

// Active returns the index of the selected tab.
func (h *HomeScreen) Active() int { return h.active }

// Capturing reports whether the active tab is reading free text.
func (h *HomeScreen) Capturing() bool {
	if len(h.tabs) == 0 {
		return false
	}
	c, ok := h.tabs[h.active].Screen.(screen.InputCapturer)
	return ok && c.Capturing()
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	var hints []layout.KeyHint
	if len(h.tabs) > 0 {
		if p, ok := h.tabs[h.active].Screen.(screen.KeyHintProvider); ok {
			hints = append(hints, p.KeyHints()...)
		}
	}
	if h.Capturing() {
		return hints
	}
	return append(hints,
		layout.KeyHint{Key: "Tab", Description: "Sección"},
		layout.KeyHint{Key: "Q", Description: "Salir"},
	)
}

// Select makes tab i active.
func (h *HomeScreen) Select(i int) {
	if i >= 0 && i < len(h.tabs) {
		h.active = i
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if len(h.tabs) == 0 {
		return h, nil
	}

	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		if !h.Capturing() {
			switch key := kmsg.String(); key {
			case "tab":
				h.Select((h.active + 1) % len(h.tabs))
				return h, nil
			case "shift+tab":
				h.Select((h.active + len(h.tabs) - 1) % len(h.tabs))
				return h, nil
			case "1", "2", "3", "4", "5", "6", "7", "8", "9":
				h.Select(int(key[0] - '1'))
				return h, nil
			}
		}
		updated, cmd := h.tabs[h.active].Screen.Update(msg)
		h.tabs[h.active].Screen = updated
		return h, cmd
	}

	cmds := make([]tea.Cmd, len(h.tabs))
	for i := range h.tabs {
		updated, cmd := h.tabs[i].Screen.Update(msg)
		h.tabs[i].Screen = updated
		cmds[i] = cmd
	}
	return h, tea.Batch(cmds...)
}

func (h *HomeScreen) View(width, height int) string {
	if len(h.tabs) == 0 {
		return ""
	}
	labels := make([]string, len(h.tabs))
	for i, t := range h.tabs {
		labels[i] = t.Label
	}
	bar := layout.RenderTabs(labels, h.active, width)
	barHeight := lipgloss.Height(bar)
	content := h.tabs[h.active].Screen.View(width, max(height-barHeight-1, 0))
	return fmt.Sprintf("%s\n\n%s", bar, content)
}
