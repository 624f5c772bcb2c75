package challenge

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/memoriaviva/memoria/internal/quiz"
	"github.com/memoriaviva/memoria/internal/ui/components"
	"github.com/memoriaviva/memoria/internal/ui/theme"
)

func (s *ChallengeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	switch s.engine.Phase() {
	case quiz.PhaseIntro:
		body = s.renderIntro(cw)
	case quiz.PhaseLoading:
		body = s.spinner.View() + " " + theme.Hint.Render("Generando conocimiento...")
	case quiz.PhaseAnswering:
		if s.engine.QuestionCount() == 0 {
			body = s.renderEmpty(cw)
		} else {
			body = s.renderQuestion(cw)
		}
	case quiz.PhaseFeedback:
		body = s.renderFeedback(cw)
	case quiz.PhaseCompleted:
		body = s.renderCompleted(cw)
	}
	return components.Centered(body, width, height)
}

func (s *ChallengeScreen) scoreLine() string {
	return lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true).
		Render(fmt.Sprintf("★ %d pts", s.engine.Score()))
}

func (s *ChallengeScreen) renderIntro(cw int) string {
	level := s.engine.Level()
	sections := []string{
		theme.Title.Width(cw).Render(fmt.Sprintf("Nivel: %s", level)),
		theme.Subtitle.Width(cw).Render(level.Description()),
		"",
		components.NewProgressBar("Niveles", s.engine.LevelIndex(), quiz.NumLevels, cw).View(),
		"",
		lipgloss.PlaceHorizontal(cw, lipgloss.Center, s.scoreLine()),
		"",
		components.NewButton("Comenzar Desafío", true, nil).View(cw),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (s *ChallengeScreen) renderEmpty(cw int) string {
	sections := []string{
		theme.Incorrect.Width(cw).Align(lipgloss.Center).Render("No se pudieron generar preguntas."),
		theme.Subtitle.Width(cw).Render("Revisa tu conexión e inténtalo de nuevo."),
		"",
		components.NewButton("Reintentar", true, nil).View(cw),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (s *ChallengeScreen) questionHeader(cw int) string {
	left := theme.Dimmed.Render(fmt.Sprintf("PREGUNTA %d / %d", s.engine.QuestionIndex()+1, s.engine.QuestionCount()))
	mid := lipgloss.NewStyle().Foreground(theme.Secondary).Render(s.engine.Level().String())
	right := s.scoreLine()
	gap := max(cw-lipgloss.Width(left)-lipgloss.Width(mid)-lipgloss.Width(right), 2)
	return left + strings.Repeat(" ", gap/2) + mid + strings.Repeat(" ", gap-gap/2) + right
}

func (s *ChallengeScreen) renderQuestion(cw int) string {
	q, _ := s.engine.Current()
	sections := []string{
		s.questionHeader(cw),
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw)),
		"",
		theme.Body.Bold(true).Width(cw).Render(q.Text),
		"",
		s.choice.View(cw),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (s *ChallengeScreen) renderFeedback(cw int) string {
	q, _ := s.engine.Current()
	correct, _ := s.engine.LastCorrect()

	verdict := theme.Incorrect.Render("✗ Incorrecto")
	if correct {
		verdict = theme.Correct.Render("✓ ¡Excelente!")
	}

	explanation := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Explicación Educativa"),
		theme.Body.Width(cw-6).Render(q.Explanation),
	)

	sections := []string{
		s.questionHeader(cw),
		"",
		s.choice.View(cw),
		"",
		verdict,
		components.Card(explanation, cw),
		components.NewButton("Siguiente Pregunta", true, nil).View(cw),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (s *ChallengeScreen) renderCompleted(cw int) string {
	sum := s.engine.Summary()

	var levels strings.Builder
	for _, l := range sum.Levels {
		fmt.Fprintf(&levels, "%-12s %d/%d\n", l.Level.String(), l.Correct, l.Total)
	}

	status := ""
	switch {
	case s.saveErr != nil:
		status = theme.Incorrect.Render("No se pudo guardar el resultado.")
	case s.saved:
		status = theme.Hint.Render("Resultado guardado.")
	}

	sections := []string{
		theme.Title.Width(cw).Render("¡Misión Cumplida!"),
		"",
		theme.Subtitle.Width(cw).Render("Puntaje Final"),
		lipgloss.PlaceHorizontal(cw, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true).Render(fmt.Sprintf("%d", sum.Score))),
		theme.Subtitle.Width(cw).Render(fmt.Sprintf("%d de %d respuestas correctas", sum.Correct, sum.Answered)),
		"",
		components.Card(strings.TrimRight(levels.String(), "\n"), cw),
		lipgloss.PlaceHorizontal(cw, lipgloss.Center, status),
		components.NewButton("Jugar de Nuevo", true, nil).View(cw),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
