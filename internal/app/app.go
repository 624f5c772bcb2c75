package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/memoriaviva/memoria/internal/catalog"
	"github.com/memoriaviva/memoria/internal/explain"
	"github.com/memoriaviva/memoria/internal/podcast"
	"github.com/memoriaviva/memoria/internal/questiongen"
	"github.com/memoriaviva/memoria/internal/router"
	"github.com/memoriaviva/memoria/internal/screen"
	"github.com/memoriaviva/memoria/internal/screens/challenge"
	"github.com/memoriaviva/memoria/internal/screens/concepts"
	"github.com/memoriaviva/memoria/internal/screens/home"
	podcastscreen "github.com/memoriaviva/memoria/internal/screens/podcast"
	"github.com/memoriaviva/memoria/internal/screens/timeline"
	"github.com/memoriaviva/memoria/internal/screens/welcome"
	"github.com/memoriaviva/memoria/internal/store"
	"github.com/memoriaviva/memoria/internal/ui/layout"
)

// Options holds the dependencies of the TUI.
type Options struct {
	Catalog   *catalog.Catalog
	Explainer explain.Gateway
	Questions questiongen.Gateway
	// Results may be nil; finished playthroughs are then not stored.
	Results   store.ResultRepo
	Challenge challenge.Config
	Log       *zap.SugaredLogger
	// Splash shows the welcome animation before the tabs.
	Splash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel builds the four tabs, behind the splash when enabled.
func newAppModel(opts Options) AppModel {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Explainer == nil {
		opts.Explainer = explain.Placeholder{}
	}
	if opts.Questions == nil {
		opts.Questions = questiongen.Placeholder{}
	}
	newHome := func() screen.Screen {
		return home.New(
			home.Tab{Label: "Línea de Tiempo", Screen: timeline.New(opts.Catalog.Events(), opts.Explainer)},
			home.Tab{Label: "Conceptos", Screen: concepts.New(opts.Catalog.Concepts(), opts.Explainer)},
			home.Tab{Label: "Desafío", Screen: challenge.New(opts.Questions, opts.Results, opts.Challenge, opts.Log)},
			home.Tab{Label: "Podcast", Screen: podcastscreen.New(podcast.New())},
		)
	}
	if opts.Splash {
		return AppModel{router: router.New(welcome.New(newHome))}
	}
	return AppModel{router: router.New(newHome())}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) capturing() bool {
	c, ok := m.router.Active().(screen.InputCapturer)
	return ok && c.Capturing()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.router.Depth() == 1 && !m.capturing() {
				return m, tea.Quit
			}
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) footerHints() []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Salir"})
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	if _, ok := m.router.Root().(*welcome.WelcomeScreen); ok {
		return m.router.View(m.width, m.height)
	}

	header := layout.RenderHeader(m.router.Root().Title(), m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(newAppModel(opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
