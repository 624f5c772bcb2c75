package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// retryClass says how an error may be retried.
type retryClass int

const (
	retryNever retryClass = iota
	retryOnce             // malformed payloads get exactly one more chance
	retryBackoff
)

func classify(err error) retryClass {
	var (
		maxTok  *ErrMaxTokensExceeded
		invalid *ErrInvalidResponse
	)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return retryNever
	case errors.As(err, &maxTok):
		return retryNever
	case errors.As(err, &invalid):
		return retryOnce
	default:
		return retryBackoff
	}
}

// RetryProvider retries transient errors with exponential backoff and
// jitter. With MaxAttempts <= 1 it is a pass-through.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
	log    *zap.SugaredLogger
}

// RetryOption customizes WithRetry.
type RetryOption func(*RetryProvider)

// RetryLogger reports each retry at debug level.
func RetryLogger(log *zap.SugaredLogger) RetryOption {
	return func(r *RetryProvider) {
		if log != nil {
			r.log = log
		}
	}
}

func WithRetry(p Provider, cfg RetryConfig, opts ...RetryOption) Provider {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	r := &RetryProvider{inner: p, config: cfg, log: zap.NewNop().Sugar()}
	for _, o := range opts {
		o(r)
	}
	return r
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var (
		lastErr     error
		usedOneShot bool
	)

	for attempt := range r.config.MaxAttempts {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if attempt == r.config.MaxAttempts-1 {
			break
		}
		switch classify(err) {
		case retryNever:
			return nil, err
		case retryOnce:
			if usedOneShot {
				return nil, err
			}
			usedOneShot = true
		}

		wait := r.backoff(attempt, err)
		r.log.Debugw("retrying LLM request",
			"purpose", PurposeFrom(ctx), "attempt", attempt+1, "wait", wait, "error", err)

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}

	return nil, lastErr
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// backoff honours a provider's Retry-After hint, otherwise grows
// exponentially up to MaxWait with ±20% jitter.
func (r *RetryProvider) backoff(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	wait = math.Min(wait, float64(r.config.MaxWait))
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(math.Max(wait, 0))
}
