package components

import (
	"charm.land/lipgloss/v2"

	"github.com/memoriaviva/memoria/internal/ui/theme"
)

// ContentWidth returns the inner width shared by cards on a screen, so
// stacked boxes line up.
func ContentWidth(frameWidth int) int {
	// Leave room for border (2) + padding (4).
	return min(max(frameWidth-6, 20), 72)
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return theme.Card.
		Width(cw - 2).
		Render(content)
}

// Modal renders content in a thick-border box centred in width x height.
func Modal(content string, cw, width, height int) string {
	box := theme.Modal.Width(cw).Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// Centered places content in the middle of the area.
func Centered(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
