package challenge

import (
	"github.com/memoriaviva/memoria/internal/quiz"
	"github.com/memoriaviva/memoria/internal/store"
)

// toResult converts an engine summary into the persisted form.
func toResult(id string, s quiz.Summary, offline bool) store.QuizResult {
	levels := make([]store.LevelResult, len(s.Levels))
	for i, l := range s.Levels {
		levels[i] = store.LevelResult{Level: l.Level.Key(), Correct: l.Correct, Total: l.Total}
	}
	return store.QuizResult{
		ID:         id,
		StartedAt:  s.StartedAt,
		FinishedAt: s.FinishedAt,
		Score:      s.Score,
		Correct:    s.Correct,
		Answered:   s.Answered,
		Offline:    offline,
		Levels:     levels,
	}
}
