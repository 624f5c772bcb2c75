// Package challenge is the Desafío tab: it drives a quiz.Engine through the
// six levels and paces the answered pause with a timer.
package challenge

import (
	"context"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/memoriaviva/memoria/internal/questiongen"
	"github.com/memoriaviva/memoria/internal/quiz"
	"github.com/memoriaviva/memoria/internal/router"
	"github.com/memoriaviva/memoria/internal/screen"
	"github.com/memoriaviva/memoria/internal/screens/history"
	"github.com/memoriaviva/memoria/internal/store"
	"github.com/memoriaviva/memoria/internal/ui/components"
	"github.com/memoriaviva/memoria/internal/ui/layout"
	"github.com/memoriaviva/memoria/internal/ui/theme"
)

const (
	DefaultFeedbackDelay = 800 * time.Millisecond
	saveTimeout          = 5 * time.Second
)

// Config tunes the challenge.
type Config struct {
	QuestionsPerLevel int
	// FeedbackDelay is the answered pause. Zero reveals feedback on the
	// next message; negative selects DefaultFeedbackDelay.
	FeedbackDelay time.Duration
	// Offline marks results produced with placeholder questions.
	Offline bool
}

// ChallengeScreen implements screen.Screen for the quiz.
type ChallengeScreen struct {
	engine  *quiz.Engine
	gateway questiongen.Gateway
	results store.ResultRepo
	cfg     Config
	log     *zap.SugaredLogger

	run     int
	runID   string
	choice  components.MultiChoice
	spinner spinner.Model

	saved   bool
	saveErr error
}

var _ screen.Screen = (*ChallengeScreen)(nil)
var _ screen.KeyHintProvider = (*ChallengeScreen)(nil)

// New creates the challenge. results may be nil, in which case finished
// playthroughs are not stored.
func New(gw questiongen.Gateway, results store.ResultRepo, cfg Config, log *zap.SugaredLogger) *ChallengeScreen {
	if cfg.FeedbackDelay < 0 {
		cfg.FeedbackDelay = DefaultFeedbackDelay
	}
	if cfg.QuestionsPerLevel <= 0 {
		cfg.QuestionsPerLevel = quiz.DefaultQuestionsPerLevel
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	s := &ChallengeScreen{
		gateway: gw,
		results: results,
		cfg:     cfg,
		log:     log,
		runID:   uuid.NewString(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
		),
	}
	s.engine = quiz.NewEngine(gw,
		quiz.WithQuestionsPerLevel(cfg.QuestionsPerLevel),
		quiz.WithObserver(s.observe),
	)
	return s
}

func (s *ChallengeScreen) observe(t quiz.Transition) {
	s.log.Debugw("quiz transition",
		"run", s.runID,
		"from", t.From.String(),
		"to", t.To.String(),
		"answered", t.Answered,
		"level", s.engine.Level().Key(),
		"score", s.engine.Score(),
	)
}

// Engine exposes the underlying state machine.
func (s *ChallengeScreen) Engine() *quiz.Engine { return s.engine }

func (s *ChallengeScreen) Init() tea.Cmd  { return nil }
func (s *ChallengeScreen) Title() string  { return "Desafío" }

func (s *ChallengeScreen) KeyHints() []layout.KeyHint {
	switch s.engine.Phase() {
	case quiz.PhaseIntro:
		return s.withHistoryHint(layout.KeyHint{Key: "Enter", Description: "Comenzar"})
	case quiz.PhaseAnswering:
		if s.engine.QuestionCount() == 0 {
			return []layout.KeyHint{{Key: "Enter", Description: "Reintentar"}}
		}
		if s.engine.Answered() {
			return nil
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Elegir"},
			{Key: "A-D", Description: "Responder"},
			{Key: "Enter", Description: "Confirmar"},
		}
	case quiz.PhaseFeedback:
		return []layout.KeyHint{{Key: "Enter", Description: "Siguiente"}}
	case quiz.PhaseCompleted:
		return s.withHistoryHint(layout.KeyHint{Key: "Enter", Description: "Jugar de nuevo"})
	}
	return nil
}

func (s *ChallengeScreen) withHistoryHint(h layout.KeyHint) []layout.KeyHint {
	if s.results == nil {
		return []layout.KeyHint{h}
	}
	return []layout.KeyHint{h, {Key: "H", Description: "Historial"}}
}

// openHistory pushes the list of stored runs.
func (s *ChallengeScreen) openHistory() tea.Cmd {
	if s.results == nil {
		return nil
	}
	scr := history.New(s.results)
	return func() tea.Msg { return router.PushScreenMsg{Screen: scr} }
}

func (s *ChallengeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case batchReadyMsg:
		return s.handleBatch(msg)

	case feedbackDueMsg:
		return s.handleFeedbackDue(msg)

	case resultSavedMsg:
		if msg.run == s.run {
			s.saved = msg.err == nil
			s.saveErr = msg.err
		}
		return s, nil

	case spinTickMsg:
		if s.engine.Phase() != quiz.PhaseLoading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg.msg)
		return s, wrapSpin(cmd)

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *ChallengeScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	confirm := key == "enter" || key == "space"

	switch s.engine.Phase() {
	case quiz.PhaseIntro:
		if confirm {
			return s, s.startLevel()
		}
		if key == "h" {
			return s, s.openHistory()
		}

	case quiz.PhaseAnswering:
		if s.engine.QuestionCount() == 0 {
			if confirm && s.engine.SkipEmptyLevel() {
				return s, s.startLevel()
			}
			return s, nil
		}
		if s.engine.Answered() {
			return s, nil
		}
		s.choice, _ = s.choice.Update(msg)
		if s.choice.Submitted {
			return s, s.submit(s.choice.ChosenIndex)
		}

	case quiz.PhaseFeedback:
		if confirm {
			return s, s.advance()
		}

	case quiz.PhaseCompleted:
		if confirm {
			s.reset()
		}
		if key == "h" {
			return s, s.openHistory()
		}
	}
	return s, nil
}

// startLevel moves to Loading and fetches the batch in the background.
func (s *ChallengeScreen) startLevel() tea.Cmd {
	if !s.engine.BeginLevel() {
		return nil
	}
	gw, level, n, run := s.gateway, s.engine.Level(), s.engine.QuestionsPerLevel(), s.run
	fetch := func() tea.Msg {
		return batchReadyMsg{run: run, questions: gw.FetchQuestions(context.Background(), level, n)}
	}
	return tea.Batch(wrapSpin(s.spinner.Tick), fetch)
}

func (s *ChallengeScreen) handleBatch(msg batchReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.run != s.run {
		return s, nil
	}
	if !s.engine.CompleteLevel(msg.questions) {
		return s, nil
	}
	if q, ok := s.engine.Current(); ok {
		s.choice = components.NewMultiChoice(q)
	} else {
		s.log.Warnw("empty question batch", "level", s.engine.Level().Key())
	}
	return s, nil
}

// submit records the answer and schedules the reveal. The engine stays in
// Answering with the choice locked until the timer fires.
func (s *ChallengeScreen) submit(index int) tea.Cmd {
	q, _ := s.engine.Current()
	if !s.engine.SubmitAnswer(index) {
		return nil
	}
	due := feedbackDueMsg{run: s.run, questionID: q.ID}
	// The answered state stays visible until this message is handled, even
	// without a pause.
	if s.cfg.FeedbackDelay == 0 {
		return func() tea.Msg { return due }
	}
	return tea.Tick(s.cfg.FeedbackDelay, func(time.Time) tea.Msg {
		return due
	})
}

func (s *ChallengeScreen) handleFeedbackDue(msg feedbackDueMsg) (screen.Screen, tea.Cmd) {
	if msg.run != s.run {
		return s, nil
	}
	if q, ok := s.engine.Current(); !ok || q.ID != msg.questionID {
		return s, nil
	}
	if s.engine.RevealFeedback() {
		s.choice.Revealed = true
	}
	return s, nil
}

func (s *ChallengeScreen) advance() tea.Cmd {
	if !s.engine.Advance() {
		return nil
	}
	switch s.engine.Phase() {
	case quiz.PhaseAnswering:
		q, _ := s.engine.Current()
		s.choice = components.NewMultiChoice(q)
	case quiz.PhaseCompleted:
		return s.saveResult()
	}
	return nil
}

func (s *ChallengeScreen) saveResult() tea.Cmd {
	if s.results == nil {
		return nil
	}
	res := toResult(s.runID, s.engine.Summary(), s.cfg.Offline)
	repo, run, log := s.results, s.run, s.log
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		err := repo.AppendQuizResult(ctx, res)
		if err != nil {
			log.Errorw("failed to save quiz result", "id", res.ID, "error", err)
		}
		return resultSavedMsg{run: run, err: err}
	}
}

// reset starts a fresh playthrough from the first level.
func (s *ChallengeScreen) reset() {
	s.engine.Reset()
	s.run++
	s.runID = uuid.NewString()
	s.choice = components.MultiChoice{}
	s.saved = false
	s.saveErr = nil
}
