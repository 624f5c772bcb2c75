package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/memoriaviva/memoria/internal/quiz"
	"github.com/memoriaviva/memoria/internal/router"
	"github.com/memoriaviva/memoria/internal/screen"
	"github.com/memoriaviva/memoria/internal/store"
	"github.com/memoriaviva/memoria/internal/ui/layout"
	"github.com/memoriaviva/memoria/internal/ui/theme"
)

const (
	pageSize    = 50
	loadTimeout = 5 * time.Second
)

type historyLoadedMsg struct {
	Results []store.QuizResult
	Err     error
}

// HistoryScreen lists finished challenge runs, newest first.
type HistoryScreen struct {
	results  store.ResultRepo
	rows     []store.QuizResult
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

func New(results store.ResultRepo) *HistoryScreen {
	return &HistoryScreen{
		results:  results,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.results
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		rows, err := repo.RecentResults(ctx, pageSize)
		return historyLoadedMsg{Results: rows, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Historial"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Detalle"},
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Esc", Description: "Volver"},
	}
}

// Loaded reports whether the first query finished.
func (s *HistoryScreen) Loaded() bool { return s.loaded }

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.rows = msg.Results
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.rows)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\n  Cargando historial...")
	}
	if len(s.rows) == 0 {
		return center.Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Aún no hay partidas. ¡Completa un desafío!")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, r := range s.rows {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(prefix+summaryLine(r))))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, l := range r.Levels {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					theme.Hint.Render(levelLine(l))))
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

func summaryLine(r store.QuizResult) string {
	d := r.FinishedAt.Sub(r.StartedAt).Round(time.Second)
	mins, secs := int(d.Minutes()), int(d.Seconds())%60

	var accuracy float64
	if r.Answered > 0 {
		accuracy = float64(r.Correct) / float64(r.Answered) * 100
	}
	line := fmt.Sprintf("%s  %d:%02d  %d pts  %.0f%% aciertos",
		r.FinishedAt.Local().Format("02 Jan 2006"), mins, secs, r.Score, accuracy)
	if r.Offline {
		line += "  (sin conexión)"
	}
	return line
}

func levelLine(l store.LevelResult) string {
	label := l.Level
	if lv, err := quiz.ParseLevel(l.Level); err == nil {
		label = lv.String()
	}
	return fmt.Sprintf("    %-12s %d/%d", label, l.Correct, l.Total)
}
