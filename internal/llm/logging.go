package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/memoriaviva/memoria/internal/store"
)

// LoggingProvider is a decorator that records every request in the event
// store and emits a structured log line.
type LoggingProvider struct {
	inner    Provider
	provider string
	events   store.EventRepo
	log      *zap.SugaredLogger
}

// WithLogging wraps a Provider with request logging. events and log may be
// nil.
func WithLogging(p Provider, provider string, events store.EventRepo, log *zap.SugaredLogger) Provider {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &LoggingProvider{inner: p, provider: provider, events: events, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		if resp.Model != "" {
			data.Model = resp.Model
		}
		data.ResponseBody = resp.Text
	}
	if err != nil {
		data.ErrorMessage = err.Error()
		l.log.Warnw("llm request failed",
			"provider", data.Provider, "model", data.Model, "purpose", purpose,
			"latency_ms", data.LatencyMs, "error", err)
	} else {
		l.log.Debugw("llm request",
			"provider", data.Provider, "model", data.Model, "purpose", purpose,
			"latency_ms", data.LatencyMs, "input_tokens", data.InputTokens,
			"output_tokens", data.OutputTokens)
	}

	if l.events != nil {
		// The request outcome stands even when the log write fails.
		if logErr := l.events.AppendLLMRequest(context.WithoutCancel(ctx), data); logErr != nil {
			l.log.Warnw("failed to record llm request", "error", logErr)
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the request for
// `memoria llm view`.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}

	return b.String()
}
