// Package detail is the modal that shows a generated explanation for a
// timeline event or a concept.
package detail

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/memoriaviva/memoria/internal/explain"
	"github.com/memoriaviva/memoria/internal/screen"
	"github.com/memoriaviva/memoria/internal/ui/components"
	"github.com/memoriaviva/memoria/internal/ui/layout"
	"github.com/memoriaviva/memoria/internal/ui/theme"
)

// ResultMsg carries a finished explanation. RequestID ties it to the modal
// that asked for it.
type ResultMsg struct {
	RequestID string
	Text      string
}

// Topic is what the modal explains.
type Topic struct {
	Name     string
	Subtitle string
	Kind     explain.Kind
}

// DetailScreen shows the explanation for one topic.
type DetailScreen struct {
	gateway   explain.Gateway
	topic     Topic
	requestID string

	text    string
	loading bool

	spinner  spinner.Model
	viewport viewport.Model
	wrappedW int
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

// New creates the modal. The request starts on Init.
func New(gw explain.Gateway, topic Topic) *DetailScreen {
	return &DetailScreen{
		gateway:   gw,
		topic:     topic,
		requestID: uuid.NewString(),
		loading:   true,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Secondary)),
		),
		viewport: viewport.New(),
	}
}

func (d *DetailScreen) Init() tea.Cmd {
	return tea.Batch(d.spinner.Tick, d.fetch())
}

func (d *DetailScreen) fetch() tea.Cmd {
	gw, topic, id := d.gateway, d.topic, d.requestID
	return func() tea.Msg {
		return ResultMsg{
			RequestID: id,
			Text:      gw.FetchExplanation(context.Background(), topic.Name, topic.Kind),
		}
	}
}

func (d *DetailScreen) Title() string { return d.topic.Name }

// RequestID identifies the explanation this modal is waiting for.
func (d *DetailScreen) RequestID() string { return d.requestID }

// Loading reports whether the explanation is still pending.
func (d *DetailScreen) Loading() bool { return d.loading }

// Text returns the explanation once loaded.
func (d *DetailScreen) Text() string { return d.text }

func (d *DetailScreen) KeyHints() []layout.KeyHint {
	if d.loading {
		return []layout.KeyHint{{Key: "Esc", Description: "Cerrar"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Desplazar"},
		{Key: "Esc", Description: "Cerrar"},
	}
}

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case ResultMsg:
		// Results for a modal that was closed or replaced are dropped.
		if msg.RequestID != d.requestID || !d.loading {
			return d, nil
		}
		d.loading = false
		d.text = msg.Text
		d.wrappedW = 0
		return d, nil

	case spinner.TickMsg:
		if !d.loading {
			return d, nil
		}
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return d, cmd

	case tea.KeyPressMsg:
		if d.loading {
			return d, nil
		}
		var cmd tea.Cmd
		d.viewport, cmd = d.viewport.Update(msg)
		return d, cmd
	}
	return d, nil
}

func (d *DetailScreen) kindLabel() string {
	if d.topic.Kind == explain.KindConcept {
		return "Concepto"
	}
	return "Hito histórico"
}

func (d *DetailScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Dimmed.Render(strings.ToUpper(d.kindLabel())))
	b.WriteString("\n")
	b.WriteString(theme.Selected.Width(cw).Render(d.topic.Name))
	b.WriteString("\n")
	if d.topic.Subtitle != "" {
		b.WriteString(theme.Year.Render(d.topic.Subtitle))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if d.loading {
		b.WriteString(d.spinner.View() + " " + theme.Hint.Render("Consultando archivo histórico..."))
		return components.Modal(b.String(), cw, width, height)
	}

	head := lipgloss.Height(b.String())
	// Modal border and padding take four rows.
	bodyHeight := max(height-head-4, 3)
	if d.wrappedW != cw {
		d.viewport.SetWidth(cw)
		d.viewport.SetContent(theme.Body.Width(cw).Render(d.text))
		d.wrappedW = cw
	}
	d.viewport.SetHeight(bodyHeight)
	b.WriteString(d.viewport.View())
	return components.Modal(b.String(), cw, width, height)
}
