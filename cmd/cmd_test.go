package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memoriaviva/memoria/internal/catalog"
	"github.com/memoriaviva/memoria/internal/explain"
	"github.com/memoriaviva/memoria/internal/store"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	return buf.String()
}

func TestCatalogTopicsCoversEverything(t *testing.T) {
	cat := catalog.Default()
	topics := catalogTopics(cat)

	require.Len(t, topics, len(cat.Events())+len(cat.Concepts()))
	assert.Equal(t, explain.KindEvent, topics[0].Kind)
	assert.Equal(t, cat.Events()[0].Title, topics[0].Name)
	last := topics[len(topics)-1]
	assert.Equal(t, explain.KindConcept, last.Kind)
}

func TestPrintCatalogFiltersSections(t *testing.T) {
	cat := catalog.Default()
	var buf bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&buf)

	printCatalog(c, cat, "concepts")
	out := buf.String()
	assert.Contains(t, out, "Conceptos Clave")
	assert.NotContains(t, out, "Línea de Tiempo")
	assert.Contains(t, out, cat.Concepts()[0].Term)
}

func TestVersionCommand(t *testing.T) {
	out := execute(t, "version")
	assert.Contains(t, out, "memoria")
}

func TestResultsCommandListsStoredResults(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "memoria.db")
	s, err := store.Open(dbPath)
	require.NoError(t, err)
	now := time.Now()
	require.NoError(t, s.ResultRepo().AppendQuizResult(context.Background(), store.QuizResult{
		ID:         "run-1",
		StartedAt:  now.Add(-time.Minute),
		FinishedAt: now,
		Score:      2500,
		Correct:    25,
		Answered:   30,
		Offline:    true,
		Levels:     []store.LevelResult{{Level: "remember", Correct: 5, Total: 5}},
	}))
	require.NoError(t, s.Close())

	out := execute(t, "results", "--db", dbPath)
	assert.Contains(t, out, "2500")
	assert.Contains(t, out, "offline")
	assert.Contains(t, out, "remember 5/5")
}
