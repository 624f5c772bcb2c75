package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/memoriaviva/memoria/internal/ui/theme"
)

// MenuItem is a single row in a Menu. Detail is rendered dimmed under the
// label when set.
type MenuItem struct {
	Label  string
	Detail string
	Action func() tea.Cmd
}

// Menu is a vertical list with keyboard navigation and scrolling.
type Menu struct {
	Items    []MenuItem
	Selected int
	offset   int
}

func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

func (m Menu) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Items)-1 {
			m.Selected++
		}
	case "home", "g":
		m.Selected = 0
	case "end", "G":
		m.Selected = len(m.Items) - 1
	case "enter":
		if item := m.Items[m.Selected]; item.Action != nil {
			return m, item.Action()
		}
	}

	return m, nil
}

func (m Menu) rowHeight() int {
	for _, it := range m.Items {
		if it.Detail != "" {
			return 2
		}
	}
	return 1
}

// View renders at most as many rows as fit in height, keeping the
// selection visible.
func (m *Menu) View(width, height int) string {
	if len(m.Items) == 0 {
		return ""
	}
	visible := max(height/m.rowHeight(), 1)
	if m.Selected < m.offset {
		m.offset = m.Selected
	}
	if m.Selected >= m.offset+visible {
		m.offset = m.Selected - visible + 1
	}
	end := min(m.offset+visible, len(m.Items))

	detailStyle := lipgloss.NewStyle().Foreground(theme.TextDim).MaxWidth(width)
	var b strings.Builder
	for i := m.offset; i < end; i++ {
		item := m.Items[i]
		if i == m.Selected {
			b.WriteString(theme.Selected.MaxWidth(width).Render("▸ " + item.Label))
		} else {
			b.WriteString(theme.Unselected.MaxWidth(width).Render("  " + item.Label))
		}
		b.WriteString("\n")
		if item.Detail != "" {
			b.WriteString(detailStyle.Render("    " + item.Detail))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
