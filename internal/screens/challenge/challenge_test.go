package challenge

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/memoriaviva/memoria/internal/questiongen"
	"github.com/memoriaviva/memoria/internal/quiz"
	"github.com/memoriaviva/memoria/internal/router"
	"github.com/memoriaviva/memoria/internal/store"
)

var (
	_ router.Broadcast = batchReadyMsg{}
	_ router.Broadcast = feedbackDueMsg{}
	_ router.Broadcast = resultSavedMsg{}
	_ router.Broadcast = spinTickMsg{}
)

// stubGateway serves placeholder questions (correct option A) or nothing.
type stubGateway struct {
	empty bool
	calls int
}

func (g *stubGateway) FetchQuestions(ctx context.Context, level quiz.Level, count int) []quiz.Question {
	g.calls++
	if g.empty {
		return nil
	}
	return questiongen.Placeholder{}.FetchQuestions(ctx, level, count)
}

// mockResultRepo implements store.ResultRepo for testing.
type mockResultRepo struct {
	results []store.QuizResult
	err     error
}

func (m *mockResultRepo) AppendQuizResult(_ context.Context, r store.QuizResult) error {
	if m.err != nil {
		return m.err
	}
	m.results = append(m.results, r)
	return nil
}

func (m *mockResultRepo) RecentResults(_ context.Context, _ int) ([]store.QuizResult, error) {
	return m.results, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func testChallenge(gw *stubGateway, repo store.ResultRepo) *ChallengeScreen {
	return New(gw, repo, Config{FeedbackDelay: time.Millisecond}, nil)
}

// drain runs cmd and feeds every resulting message back into the screen,
// skipping spinner ticks so the loop terminates.
func drain(s *ChallengeScreen, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			drain(s, c)
		}
	case spinTickMsg:
	default:
		_, next := s.Update(msg)
		drain(s, next)
	}
}

func press(s *ChallengeScreen, msg tea.KeyPressMsg) tea.Cmd {
	_, cmd := s.Update(msg)
	return cmd
}

func TestChallenge_Title(t *testing.T) {
	s := testChallenge(&stubGateway{}, nil)
	if s.Title() != "Desafío" {
		t.Errorf("unexpected title %q", s.Title())
	}
}

func TestChallenge_IntroView(t *testing.T) {
	s := testChallenge(&stubGateway{}, nil)
	view := s.View(100, 30)
	for _, want := range []string{"Nivel: Recordar", "Comenzar Desafío"} {
		if !strings.Contains(view, want) {
			t.Errorf("intro view missing %q", want)
		}
	}
}

func TestChallenge_StartLoadsLevel(t *testing.T) {
	gw := &stubGateway{}
	s := testChallenge(gw, nil)

	cmd := press(s, enter())
	if s.Engine().Phase() != quiz.PhaseLoading {
		t.Fatalf("expected loading, got %v", s.Engine().Phase())
	}
	if !strings.Contains(s.View(100, 30), "Generando conocimiento...") {
		t.Error("loading view missing")
	}

	// A second enter while loading must not start another fetch.
	if press(s, enter()) != nil {
		t.Error("expected no command while loading")
	}

	drain(s, cmd)
	if gw.calls != 1 {
		t.Errorf("expected 1 fetch, got %d", gw.calls)
	}
	if s.Engine().Phase() != quiz.PhaseAnswering || s.Engine().QuestionCount() != 5 {
		t.Fatalf("expected 5 questions answering, got %v/%d", s.Engine().Phase(), s.Engine().QuestionCount())
	}
	if !strings.Contains(s.View(100, 30), "PREGUNTA 1 / 5") {
		t.Error("question header missing")
	}
}

func TestChallenge_AnsweredStateBeforeFeedback(t *testing.T) {
	s := testChallenge(&stubGateway{}, nil)
	drain(s, press(s, enter()))

	cmd := press(s, keyPress('b'))
	if cmd == nil {
		t.Fatal("expected the feedback timer")
	}
	if s.Engine().Phase() != quiz.PhaseAnswering || !s.Engine().Answered() {
		t.Fatalf("expected answered state, got %v answered=%v", s.Engine().Phase(), s.Engine().Answered())
	}
	if sel, _ := s.Engine().Selected(); sel != 1 {
		t.Errorf("expected option B recorded, got %d", sel)
	}

	// Further input is ignored while the answer is locked.
	if press(s, keyPress('a')) != nil {
		t.Error("second answer should be ignored")
	}
	if s.Engine().Score() != 0 {
		t.Errorf("score changed by ignored answer: %d", s.Engine().Score())
	}

	drain(s, cmd)
	if s.Engine().Phase() != quiz.PhaseFeedback {
		t.Fatalf("expected feedback, got %v", s.Engine().Phase())
	}
	view := s.View(100, 40)
	for _, want := range []string{"Incorrecto", "Explicación Educativa", "Siguiente Pregunta"} {
		if !strings.Contains(view, want) {
			t.Errorf("feedback view missing %q", want)
		}
	}
}

func TestChallenge_FullPlaythrough(t *testing.T) {
	repo := &mockResultRepo{}
	s := testChallenge(&stubGateway{}, repo)

	for level := range quiz.NumLevels {
		if s.Engine().LevelIndex() != level || s.Engine().Phase() != quiz.PhaseIntro {
			t.Fatalf("expected intro of level %d, got %d/%v", level, s.Engine().LevelIndex(), s.Engine().Phase())
		}
		drain(s, press(s, enter()))
		for range quiz.DefaultQuestionsPerLevel {
			drain(s, press(s, keyPress('a')))
			if s.Engine().Phase() != quiz.PhaseFeedback {
				t.Fatalf("expected feedback, got %v", s.Engine().Phase())
			}
			drain(s, press(s, enter()))
		}
	}

	if s.Engine().Phase() != quiz.PhaseCompleted {
		t.Fatalf("expected completed, got %v", s.Engine().Phase())
	}
	want := quiz.NumLevels * quiz.DefaultQuestionsPerLevel * quiz.PointsPerCorrect
	if s.Engine().Score() != want {
		t.Errorf("expected score %d, got %d", want, s.Engine().Score())
	}

	if len(repo.results) != 1 {
		t.Fatalf("expected 1 saved result, got %d", len(repo.results))
	}
	res := repo.results[0]
	if res.Score != want || res.Correct != 30 || res.Answered != 30 || len(res.Levels) != quiz.NumLevels {
		t.Errorf("unexpected result %+v", res)
	}
	if res.Levels[0].Level != "remember" || res.Levels[5].Level != "create" {
		t.Errorf("unexpected level keys %+v", res.Levels)
	}

	view := s.View(100, 40)
	for _, want := range []string{"¡Misión Cumplida!", "Puntaje Final", "3000", "Jugar de Nuevo", "Resultado guardado."} {
		if !strings.Contains(view, want) {
			t.Errorf("completed view missing %q", want)
		}
	}

	// Other keys leave Completed untouched.
	press(s, keyPress('a'))
	if s.Engine().Phase() != quiz.PhaseCompleted {
		t.Fatal("completed must be terminal")
	}

	press(s, enter())
	if s.Engine().Phase() != quiz.PhaseIntro || s.Engine().Score() != 0 || s.Engine().LevelIndex() != 0 {
		t.Errorf("expected full reset, got %v score=%d level=%d", s.Engine().Phase(), s.Engine().Score(), s.Engine().LevelIndex())
	}
}

func TestChallenge_SaveFailureShown(t *testing.T) {
	repo := &mockResultRepo{err: errors.New("disk full")}
	s := testChallenge(&stubGateway{}, repo)
	s.Update(resultSavedMsg{run: s.run, err: repo.err})
	if s.saveErr == nil {
		t.Fatal("expected save error recorded")
	}
}

func TestChallenge_EmptyBatchRetry(t *testing.T) {
	gw := &stubGateway{empty: true}
	s := testChallenge(gw, nil)
	drain(s, press(s, enter()))

	if s.Engine().Phase() != quiz.PhaseAnswering || s.Engine().QuestionCount() != 0 {
		t.Fatalf("expected empty answering, got %v/%d", s.Engine().Phase(), s.Engine().QuestionCount())
	}
	if !strings.Contains(s.View(100, 30), "No se pudieron generar preguntas.") {
		t.Error("empty view missing")
	}

	// Letters do nothing without questions.
	press(s, keyPress('a'))
	if s.Engine().Answered() {
		t.Fatal("no answer without a question")
	}

	gw.empty = false
	drain(s, press(s, enter()))
	if gw.calls != 2 {
		t.Errorf("expected a second fetch, got %d", gw.calls)
	}
	if s.Engine().QuestionCount() != 5 {
		t.Errorf("expected retry to load questions, got %d", s.Engine().QuestionCount())
	}
}

func TestChallenge_StaleMessagesAfterReset(t *testing.T) {
	s := testChallenge(&stubGateway{}, nil)
	oldRun := s.run
	s.reset()

	s.Update(feedbackDueMsg{run: oldRun, questionID: "mock-Recordar-0"})
	s.Update(batchReadyMsg{run: oldRun, questions: []quiz.Question{{ID: "x"}}})
	if s.Engine().Phase() != quiz.PhaseIntro {
		t.Errorf("stale messages changed phase to %v", s.Engine().Phase())
	}
}

func TestChallenge_KeyHints(t *testing.T) {
	s := testChallenge(&stubGateway{}, nil)
	if hints := s.KeyHints(); len(hints) != 1 || hints[0].Description != "Comenzar" {
		t.Errorf("unexpected intro hints %+v", hints)
	}
	drain(s, press(s, enter()))
	if hints := s.KeyHints(); len(hints) != 3 {
		t.Errorf("expected answering hints, got %+v", hints)
	}
}

func TestChallenge_HistoryKey(t *testing.T) {
	s := testChallenge(&stubGateway{}, nil)
	if cmd := press(s, keyPress('h')); cmd != nil {
		t.Error("history should be unavailable without a result repo")
	}

	s = testChallenge(&stubGateway{}, &mockResultRepo{})
	if hints := s.KeyHints(); len(hints) != 2 || hints[1].Key != "H" {
		t.Errorf("expected history hint, got %+v", hints)
	}
	cmd := press(s, keyPress('h'))
	if cmd == nil {
		t.Fatal("expected push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if push.Screen.Title() != "Historial" {
		t.Errorf("pushed %q", push.Screen.Title())
	}
	if s.Engine().Phase() != quiz.PhaseIntro {
		t.Errorf("phase changed to %v", s.Engine().Phase())
	}
}

func TestChallenge_ZeroFeedbackDelay(t *testing.T) {
	s := New(&stubGateway{}, nil, Config{FeedbackDelay: 0}, nil)
	if s.cfg.FeedbackDelay != 0 {
		t.Fatalf("zero delay replaced with %v", s.cfg.FeedbackDelay)
	}
	drain(s, press(s, enter()))

	cmd := press(s, keyPress('a'))
	if cmd == nil {
		t.Fatal("expected the feedback command")
	}
	if !s.Engine().Answered() || s.Engine().Phase() != quiz.PhaseAnswering {
		t.Fatalf("expected answered state before feedback, got %v", s.Engine().Phase())
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		s.Update(msg)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("zero delay should not wait")
	}
	if s.Engine().Phase() != quiz.PhaseFeedback {
		t.Errorf("expected feedback, got %v", s.Engine().Phase())
	}
}

func TestChallenge_NegativeFeedbackDelayUsesDefault(t *testing.T) {
	s := New(&stubGateway{}, nil, Config{FeedbackDelay: -time.Second}, nil)
	if s.cfg.FeedbackDelay != DefaultFeedbackDelay {
		t.Errorf("expected default delay, got %v", s.cfg.FeedbackDelay)
	}
}
