package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/memoriaviva/memoria/internal/ui/theme"
)

const bannerArt = `
 █▀▄▀█ █▀▀ █▀▄▀█ █▀█ █▀█ █ ▄▀█   █ █ █ █ █ ▄▀█
 █ ▀ █ ██▄ █ ▀ █ █▄█ █▀▄ █ █▀█   ▀▄▀ █ ▀▄▀ █▀█`

const bannerCompact = "M E M O R I A   V I V A"

// RenderBanner returns the title banner in the primary color, compact
// below 50 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 50 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
