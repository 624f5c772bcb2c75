// Package concepts is the glossary tab.
package concepts

import (
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

// ConceptsScreen lists key terms with their short definition.
type ConceptsScreen struct {
	concepts []catalog.Concept
	gateway  explain.Gateway
	menu     components.Menu
}

var _ screen.Screen = (*ConceptsScreen)(nil)
var _ screen.KeyHintProvider = (*ConceptsScreen)(nil)

func New(concepts []catalog.Concept, gw explain.Gateway) *ConceptsScreen {
	s := &ConceptsScreen{concepts: concepts, gateway: gw}
	items := make([]components.MenuItem, len(concepts))
	for i, c := range concepts {
		items[i] = components.MenuItem{
			Label:  c.Term,
			Detail: c.Definition,
			Action: s.open(c),
		}
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *ConceptsScreen) open(c catalog.Concept) func() tea.Cmd {
	return func() tea.Cmd {
		modal := detail.New(s.gateway, detail.Topic{Name: c.Term, Kind: explain.KindConcept})
		return func() tea.Msg { return router.PushScreenMsg{Screen: modal} }
	}
}

func (s *ConceptsScreen) Init() tea.Cmd { return nil }
func (s *ConceptsScreen) Title() string { return "Conceptos" }

func (s *ConceptsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Profundizar"},
	}
}

func (s *ConceptsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ConceptsScreen) View(width, height int) string {
	if len(s.concepts) == 0 {
		return components.Centered(theme.Hint.Render("Sin conceptos registrados."), width, height)
	}
	intro := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		PaddingLeft(2).
		Render("Glosario del período. Enter para una explicación en profundidad.")

	var b strings.Builder
	b.WriteString(intro)
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(s.menu.View(width-4, max(height-3, 2))))
	return b.String()
}
