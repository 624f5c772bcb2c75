// Package timeline lists the chronology of the dictatorship.
package timeline

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/memoriaviva/memoria/internal/catalog"
	"github.com/memoriaviva/memoria/internal/explain"
	"github.com/memoriaviva/memoria/internal/router"
	"github.com/memoriaviva/memoria/internal/screen"
	"github.com/memoriaviva/memoria/internal/screens/detail"
	"github.com/memoriaviva/memoria/internal/ui/components"
	"github.com/memoriaviva/memoria/internal/ui/layout"
	"github.com/memoriaviva/memoria/internal/ui/theme"
)

// TimelineScreen shows the events in order. Enter opens the detail modal.
type TimelineScreen struct {
	events  []catalog.Event
	gateway explain.Gateway
	menu    components.Menu
}

var _ screen.Screen = (*TimelineScreen)(nil)
var _ screen.KeyHintProvider = (*TimelineScreen)(nil)

func New(events []catalog.Event, gw explain.Gateway) *TimelineScreen {
	s := &TimelineScreen{events: events, gateway: gw}
	items := make([]components.MenuItem, len(events))
	for i, ev := range events {
		items[i] = components.MenuItem{
			Label:  fmt.Sprintf("%d  %s", ev.Year, ev.Title),
			Detail: ev.Description,
			Action: s.open(ev),
		}
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *TimelineScreen) open(ev catalog.Event) func() tea.Cmd {
	return func() tea.Cmd {
		modal := detail.New(s.gateway, detail.Topic{
			Name:     ev.Title,
			Subtitle: fmt.Sprintf("%s %d", ev.Month, ev.Year),
			Kind:     explain.KindEvent,
		})
		return func() tea.Msg { return router.PushScreenMsg{Screen: modal} }
	}
}

func (s *TimelineScreen) Init() tea.Cmd { return nil }
func (s *TimelineScreen) Title() string { return "Línea de Tiempo" }

func (s *TimelineScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Ver detalle"},
	}
}

// Selected returns the highlighted event.
func (s *TimelineScreen) Selected() catalog.Event {
	return s.events[s.menu.Selected]
}

func (s *TimelineScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *TimelineScreen) View(width, height int) string {
	if len(s.events) == 0 {
		return components.Centered(theme.Hint.Render("Sin hitos registrados."), width, height)
	}

	intro := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(width - 4).
		PaddingLeft(2).
		Render("Cronología 1973-1990. Selecciona un hito para profundizar.")

	var b strings.Builder
	b.WriteString(intro)
	b.WriteString("\n\n")
	listHeight := max(height-lipgloss.Height(intro)-1, 2)
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(s.menu.View(width-4, listHeight)))
	return b.String()
}
