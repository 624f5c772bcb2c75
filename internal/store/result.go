package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

type resultRepo struct {
	db *sql.DB
}

func (r *resultRepo) AppendQuizResult(ctx context.Context, res QuizResult) error {
	levels, err := json.Marshal(res.Levels)
	if err != nil {
		return fmt.Errorf("marshal levels: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO quiz_results (id, started_at, finished_at, score, correct, answered, offline, levels)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		res.ID, res.StartedAt.UTC().UnixMilli(), res.FinishedAt.UTC().UnixMilli(),
		res.Score, res.Correct, res.Answered, res.Offline, string(levels),
	)
	if err != nil {
		return fmt.Errorf("save quiz result: %w", err)
	}
	return nil
}

func (r *resultRepo) RecentResults(ctx context.Context, limit int) ([]QuizResult, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, started_at, finished_at, score, correct, answered, offline, levels
		FROM quiz_results
		ORDER BY finished_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query quiz results: %w", err)
	}
	defer rows.Close()

	var results []QuizResult
	for rows.Next() {
		var (
			res               QuizResult
			started, finished int64
			levels            string
		)
		if err := rows.Scan(&res.ID, &started, &finished, &res.Score, &res.Correct,
			&res.Answered, &res.Offline, &levels); err != nil {
			return nil, fmt.Errorf("scan quiz result: %w", err)
		}
		res.StartedAt = time.UnixMilli(started).UTC()
		res.FinishedAt = time.UnixMilli(finished).UTC()
		if err := json.Unmarshal([]byte(levels), &res.Levels); err != nil {
			return nil, fmt.Errorf("decode levels for %s: %w", res.ID, err)
		}
		results = append(results, res)
	}
	return results, rows.Err()
}
