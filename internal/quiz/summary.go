package quiz

import "time"

// LevelResult counts answers given within one level.
type LevelResult struct {
	Level   Level
	Correct int
	Total   int
}

// Summary describes the session so far. FinishedAt is zero until the
// session completes.
type Summary struct {
	Score      int
	Correct    int
	Answered   int
	Levels     []LevelResult
	StartedAt  time.Time
	FinishedAt time.Time
}

// Duration returns the time between the first level start and completion.
func (s Summary) Duration() time.Duration {
	if s.StartedAt.IsZero() || s.FinishedAt.IsZero() {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt)
}

// Summary returns a snapshot of the session statistics.
func (e *Engine) Summary() Summary {
	return Summary{
		Score:      e.score,
		Correct:    e.correct,
		Answered:   e.answered,
		Levels:     append([]LevelResult(nil), e.levelResults...),
		StartedAt:  e.startedAt,
		FinishedAt: e.finishedAt,
	}
}
