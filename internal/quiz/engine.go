package quiz

import (
	"context"
	"time"
)

// PointsPerCorrect is the fixed award for a correct answer.
const PointsPerCorrect = 100

// DefaultQuestionsPerLevel is the batch size requested for each level.
const DefaultQuestionsPerLevel = 5

// QuestionSource supplies question batches. Implementations absorb their
// own failures and return an empty slice instead of an error.
type QuestionSource interface {
	FetchQuestions(ctx context.Context, level Level, count int) []Question
}

// Option configures an Engine.
type Option func(*Engine)

// WithQuestionsPerLevel overrides the batch size.
func WithQuestionsPerLevel(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.perLevel = n
		}
	}
}

// WithObserver registers a transition observer.
func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observer = o }
}

// WithClock overrides time.Now for summary timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// Engine owns one quiz session and is its only mutator. Every operation
// checks the current phase and reports false, leaving the state untouched,
// when called out of turn. Engine is not safe for concurrent use; the
// caller serializes operations.
type Engine struct {
	source   QuestionSource
	perLevel int
	observer Observer
	now      func() time.Time

	levelIndex    int
	questions     []Question
	questionIndex int
	score         int
	phase         Phase
	selected      *int
	lastCorrect   *bool

	correct      int
	answered     int
	levelResults []LevelResult
	startedAt    time.Time
	finishedAt   time.Time
}

// NewEngine creates an engine in Intro at the first level. source is only
// used by StartLevel and may be nil when the caller drives BeginLevel and
// CompleteLevel itself.
func NewEngine(source QuestionSource, opts ...Option) *Engine {
	e := &Engine{
		source:   source,
		perLevel: DefaultQuestionsPerLevel,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// BeginLevel moves Intro → Loading and reports whether the caller must now
// fetch a batch for Level(). It returns false in any other phase, which
// keeps at most one fetch in flight per session.
func (e *Engine) BeginLevel() bool {
	if e.phase != PhaseIntro {
		return false
	}
	if e.startedAt.IsZero() {
		e.startedAt = e.now()
	}
	e.questions = nil
	e.questionIndex = 0
	e.clearAnswer()
	e.transition(PhaseLoading, false)
	return true
}

// CompleteLevel installs a fetched batch and moves Loading → Answering.
// An empty batch is accepted; Current then reports no question.
func (e *Engine) CompleteLevel(batch []Question) bool {
	if e.phase != PhaseLoading {
		return false
	}
	if len(batch) > e.perLevel {
		batch = batch[:e.perLevel]
	}
	level := e.Level()
	e.questions = make([]Question, len(batch))
	for i, q := range batch {
		q.Level = level
		e.questions[i] = q
	}
	e.questionIndex = 0
	e.transition(PhaseAnswering, false)
	return true
}

// StartLevel runs BeginLevel, fetches synchronously from the configured
// source and runs CompleteLevel.
func (e *Engine) StartLevel(ctx context.Context) bool {
	if !e.BeginLevel() {
		return false
	}
	var batch []Question
	if e.source != nil {
		batch = e.source.FetchQuestions(ctx, e.Level(), e.perLevel)
	}
	return e.CompleteLevel(batch)
}

// SubmitAnswer records the first answer to the current question. Later
// calls for the same question are ignored. The engine stays in Answering
// with Answered() true until RevealFeedback.
func (e *Engine) SubmitAnswer(index int) bool {
	if e.phase != PhaseAnswering || e.selected != nil {
		return false
	}
	q, ok := e.Current()
	if !ok || index < 0 || index >= NumOptions {
		return false
	}

	correct := q.IsCorrect(index)
	e.selected = &index
	e.lastCorrect = &correct
	e.answered++
	if correct {
		e.correct++
		e.score += PointsPerCorrect
	}
	e.recordLevelAnswer(correct)
	e.transition(PhaseAnswering, true)
	return true
}

// RevealFeedback moves an answered question to Feedback. The delay before
// calling it belongs to the caller.
func (e *Engine) RevealFeedback() bool {
	if e.phase != PhaseAnswering || e.selected == nil {
		return false
	}
	e.transition(PhaseFeedback, false)
	return true
}

// Advance leaves Feedback: to the next question, to Intro of the next
// level, or to Completed after the last level.
func (e *Engine) Advance() bool {
	if e.phase != PhaseFeedback {
		return false
	}
	e.clearAnswer()

	if e.questionIndex+1 < len(e.questions) {
		e.questionIndex++
		e.transition(PhaseAnswering, false)
		return true
	}
	e.nextLevel()
	return true
}

// SkipEmptyLevel returns an empty batch to Intro at the same level so the
// player can start it again.
func (e *Engine) SkipEmptyLevel() bool {
	if e.phase != PhaseAnswering || len(e.questions) > 0 {
		return false
	}
	e.transition(PhaseIntro, false)
	return true
}

// Reset discards the session and returns to Intro at the first level.
func (e *Engine) Reset() {
	from := e.phase
	e.levelIndex = 0
	e.questions = nil
	e.questionIndex = 0
	e.score = 0
	e.clearAnswer()
	e.correct = 0
	e.answered = 0
	e.levelResults = nil
	e.startedAt = time.Time{}
	e.finishedAt = time.Time{}
	e.phase = PhaseIntro
	e.notify(Transition{From: from, To: PhaseIntro})
}

func (e *Engine) nextLevel() {
	if e.levelIndex+1 < NumLevels {
		e.levelIndex++
		e.questions = nil
		e.questionIndex = 0
		e.transition(PhaseIntro, false)
		return
	}
	e.finishedAt = e.now()
	e.transition(PhaseCompleted, false)
}

func (e *Engine) recordLevelAnswer(correct bool) {
	level := e.Level()
	if n := len(e.levelResults); n == 0 || e.levelResults[n-1].Level != level {
		e.levelResults = append(e.levelResults, LevelResult{Level: level})
	}
	r := &e.levelResults[len(e.levelResults)-1]
	r.Total++
	if correct {
		r.Correct++
	}
}

func (e *Engine) clearAnswer() {
	e.selected = nil
	e.lastCorrect = nil
}

func (e *Engine) transition(to Phase, answered bool) {
	from := e.phase
	e.phase = to
	e.notify(Transition{From: from, To: to, Answered: answered})
}

func (e *Engine) notify(t Transition) {
	if e.observer != nil {
		e.observer(t)
	}
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// Level returns the level being played.
func (e *Engine) Level() Level { return AllLevels[e.levelIndex] }

// LevelIndex returns the zero-based level position.
func (e *Engine) LevelIndex() int { return e.levelIndex }

// Score returns the cumulative score.
func (e *Engine) Score() int { return e.score }

// QuestionIndex returns the zero-based position in the current batch.
func (e *Engine) QuestionIndex() int { return e.questionIndex }

// QuestionCount returns the size of the current batch.
func (e *Engine) QuestionCount() int { return len(e.questions) }

// QuestionsPerLevel returns the configured batch size.
func (e *Engine) QuestionsPerLevel() int { return e.perLevel }

// Current returns the active question, if any.
func (e *Engine) Current() (Question, bool) {
	if e.questionIndex < 0 || e.questionIndex >= len(e.questions) {
		return Question{}, false
	}
	return e.questions[e.questionIndex], true
}

// Answered reports whether the current question is locked.
func (e *Engine) Answered() bool { return e.selected != nil }

// Selected returns the locked answer, if any.
func (e *Engine) Selected() (int, bool) {
	if e.selected == nil {
		return 0, false
	}
	return *e.selected, true
}

// LastCorrect returns the correctness of the locked answer, if any.
func (e *Engine) LastCorrect() (bool, bool) {
	if e.lastCorrect == nil {
		return false, false
	}
	return *e.lastCorrect, true
}
