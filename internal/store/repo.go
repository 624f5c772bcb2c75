package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // exact match when set
}

// LLMRequestEventData captures a single provider call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored provider call.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// UsageStat aggregates calls grouped by purpose.
type UsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates calls grouped by model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo records and reads provider calls.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns nil, nil when id does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	LLMUsageByPurpose(ctx context.Context) ([]UsageStat, error)
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}

// LevelResult is the outcome of one quiz level.
type LevelResult struct {
	Level   string `json:"level"`
	Correct int    `json:"correct"`
	Total   int    `json:"total"`
}

// QuizResult is a finished playthrough.
type QuizResult struct {
	ID         string        `json:"id"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Score      int           `json:"score"`
	Correct    int           `json:"correct"`
	Answered   int           `json:"answered"`
	Offline    bool          `json:"offline"`
	Levels     []LevelResult `json:"levels"`
}

// ResultRepo stores finished playthroughs.
type ResultRepo interface {
	AppendQuizResult(ctx context.Context, r QuizResult) error

	// RecentResults returns up to limit results, newest first.
	RecentResults(ctx context.Context, limit int) ([]QuizResult, error)
}
