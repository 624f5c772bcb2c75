// Package welcome is the splash shown before the tabs.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/memoriaviva/memoria/internal/router"
	"github.com/memoriaviva/memoria/internal/screen"
	"github.com/memoriaviva/memoria/internal/ui/layout"
	"github.com/memoriaviva/memoria/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	flameEnd     = 500 * time.Millisecond
	bannerEnd    = 1200 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const candleArt = `    ( )
     |
  ╭──┴──╮
  │     │
  │     │
  │     │
  ╰─────╯`

// flame frames flicker on top of the candle
var flameFrames = []string{"( )", "(·)", "{ }"}

type tickMsg time.Time

// WelcomeScreen plays a short splash, then replaces itself with the screen
// built by homeFactory.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		w.tickCount++
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
			return w, tick()
		}
		return w, w.transition()

	case tea.KeyPressMsg:
		// Keys are ignored until the banner is on screen.
		if w.elapsed >= bannerEnd {
			return w, w.transition()
		}
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	home := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	art := candleArt
	if w.elapsed >= flameEnd {
		frame := flameFrames[w.tickCount%len(flameFrames)]
		art = strings.Replace(art, "( )", frame, 1)
	}
	lines := strings.Split(art, "\n")
	lines[0] = lipgloss.NewStyle().Foreground(theme.Highlight).Render(lines[0])
	body := lipgloss.NewStyle().Foreground(theme.Text).Render(strings.Join(lines[1:], "\n"))

	sections := []string{lines[0] + "\n" + body}

	if w.elapsed >= bannerEnd {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(layout.AppTagline),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("presiona cualquier tecla para continuar"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}
