package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/memoriaviva/memoria/internal/router"
	"github.com/memoriaviva/memoria/internal/store"
)

type fakeRepo struct {
	rows []store.QuizResult
	err  error
}

func (f *fakeRepo) AppendQuizResult(context.Context, store.QuizResult) error { return nil }

func (f *fakeRepo) RecentResults(context.Context, int) ([]store.QuizResult, error) {
	return f.rows, f.err
}

func load(s *HistoryScreen) {
	s.Update(s.Init()())
}

func sampleResult() store.QuizResult {
	end := time.Date(2026, 9, 11, 12, 0, 0, 0, time.UTC)
	return store.QuizResult{
		ID:         "r1",
		StartedAt:  end.Add(-3*time.Minute - 5*time.Second),
		FinishedAt: end,
		Score:      2400,
		Correct:    24,
		Answered:   30,
		Levels: []store.LevelResult{
			{Level: "remember", Correct: 5, Total: 5},
			{Level: "create", Correct: 2, Total: 5},
		},
	}
}

func TestHistory_LoadingThenEmpty(t *testing.T) {
	s := New(&fakeRepo{})
	if !strings.Contains(s.View(80, 20), "Cargando") {
		t.Error("expected loading text before the query returns")
	}
	load(s)
	if !s.Loaded() {
		t.Fatal("expected loaded")
	}
	if !strings.Contains(s.View(80, 20), "Aún no hay partidas") {
		t.Error("expected empty state")
	}
}

func TestHistory_Error(t *testing.T) {
	s := New(&fakeRepo{err: errors.New("db locked")})
	load(s)
	if !strings.Contains(s.View(80, 20), "db locked") {
		t.Error("expected error text")
	}
}

func TestHistory_RowsAndExpand(t *testing.T) {
	s := New(&fakeRepo{rows: []store.QuizResult{sampleResult()}})
	load(s)

	v := s.View(100, 20)
	if !strings.Contains(v, "2400 pts") || !strings.Contains(v, "80% aciertos") || !strings.Contains(v, "3:05") {
		t.Errorf("unexpected row: %q", v)
	}
	if strings.Contains(v, "Recordar") {
		t.Error("levels should be hidden until expanded")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	v = s.View(100, 20)
	if !strings.Contains(v, "Recordar") || !strings.Contains(v, "2/5") {
		t.Errorf("expected level breakdown, got %q", v)
	}
}

func TestHistory_EscPops(t *testing.T) {
	s := New(&fakeRepo{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
