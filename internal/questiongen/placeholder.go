package questiongen

import (
	"context"
	"fmt"

	"github.com/memoriaviva/memoria/internal/quiz"
)

// Offline question content, shown when no provider credential exists.
const (
	placeholderTextFormat   = "Pregunta simulada (Sin API Key) para el nivel %s. ¿Qué ocurrió en 1973?"
	placeholderExplanation  = "Esta es una respuesta simulada porque no hay API Key configurada."
	placeholderCorrectIndex = 0
)

var placeholderOptions = [quiz.NumOptions]string{
	"Golpe de Estado", "Terremoto", "Mundial de Fútbol", "Nada",
}

// Placeholder returns deterministic questions without any network access.
type Placeholder struct{}

// FetchQuestions returns exactly count questions for level.
func (Placeholder) FetchQuestions(_ context.Context, level quiz.Level, count int) []quiz.Question {
	if count <= 0 {
		return nil
	}
	out := make([]quiz.Question, count)
	for i := range out {
		out[i] = quiz.Question{
			ID:           fmt.Sprintf("mock-%s-%d", level, i),
			Level:        level,
			Text:         fmt.Sprintf(placeholderTextFormat, level),
			Options:      placeholderOptions,
			CorrectIndex: placeholderCorrectIndex,
			Explanation:  placeholderExplanation,
		}
	}
	return out
}
