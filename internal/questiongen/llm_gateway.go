package questiongen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/memoriaviva/memoria/internal/llm"
	"github.com/memoriaviva/memoria/internal/quiz"
)

// LLMGateway asks a provider for a batch of questions.
type LLMGateway struct {
	provider llm.Provider
	config   Config
	log      *zap.SugaredLogger
}

// NewLLMGateway creates a gateway. A nil logger discards output.
func NewLLMGateway(provider llm.Provider, cfg Config, log *zap.SugaredLogger) *LLMGateway {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &LLMGateway{provider: provider, config: cfg, log: log}
}

// questionOutput is one raw item before validation.
type questionOutput struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

type batchOutput struct {
	Questions []questionOutput `json:"questions"`
}

// FetchQuestions returns at most count valid questions for level. Any
// transport or parse failure is logged and yields an empty batch.
func (g *LLMGateway) FetchQuestions(ctx context.Context, level quiz.Level, count int) []quiz.Question {
	if count <= 0 {
		return nil
	}
	qs, err := g.fetch(ctx, level, count)
	if err != nil {
		g.log.Warnw("question generation failed",
			"level", level.Key(),
			"count", count,
			"error", err,
		)
		return nil
	}
	return qs
}

func (g *LLMGateway) fetch(ctx context.Context, level quiz.Level, count int) ([]quiz.Question, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestions)
	if g.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.config.Timeout)
		defer cancel()
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(level, count)},
		},
		Schema:      BatchSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	raw, err := parseBatch(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	out := make([]quiz.Question, 0, min(len(raw), count))
	seen := make(map[string]bool, len(raw))
	for i, r := range raw {
		if len(out) == count {
			break
		}
		if len(r.Options) != quiz.NumOptions {
			g.log.Debugw("dropping question", "index", i, "reason",
				fmt.Sprintf("expected %d options, got %d", quiz.NumOptions, len(r.Options)))
			continue
		}
		q := quiz.Question{
			ID:           strings.TrimSpace(r.ID),
			Level:        level,
			Text:         strings.TrimSpace(r.Text),
			CorrectIndex: r.CorrectAnswer,
			Explanation:  strings.TrimSpace(r.Explanation),
		}
		copy(q.Options[:], r.Options)

		// IDs only need to be unique within the batch.
		if q.ID == "" || seen[q.ID] {
			q.ID = freshID(level, i, seen)
		}

		if verr := g.validate(q); verr != nil {
			g.log.Debugw("dropping question", "index", i, "reason", verr.Error())
			continue
		}
		seen[q.ID] = true
		out = append(out, q)
	}
	return out, nil
}

// freshID returns <level>-<n> for the first n >= start not already taken.
func freshID(level quiz.Level, start int, seen map[string]bool) string {
	for n := start; ; n++ {
		id := fmt.Sprintf("%s-%d", level.Key(), n)
		if !seen[id] {
			return id
		}
	}
}

func (g *LLMGateway) validate(q quiz.Question) *ValidationError {
	for _, v := range g.config.Validators {
		if verr := v.Validate(q); verr != nil {
			return verr
		}
	}
	return nil
}

// parseBatch accepts the object-wrapped form and, for providers that ignore
// the schema, a bare array.
func parseBatch(content json.RawMessage) ([]questionOutput, error) {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		// Free-text reply; the JSON may be inside the string.
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, err
		}
		trimmed = bytes.TrimSpace([]byte(stripFence(s)))
	}
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []questionOutput
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	}
	var batch batchOutput
	if err := json.Unmarshal(trimmed, &batch); err != nil {
		return nil, err
	}
	return batch.Questions, nil
}

// stripFence removes a surrounding markdown code fence.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	return strings.TrimSuffix(strings.TrimSpace(s), "```")
}
