package explain

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds FetchAll when the caller passes limit <= 0.
const DefaultConcurrency = 4

// Topic names something to explain.
type Topic struct {
	Name string
	Kind Kind
}

// Result pairs a topic with its explanation.
type Result struct {
	Topic Topic
	Text  string
}

// FetchAll requests explanations for every topic concurrently, with at most
// limit requests in flight. Results keep the order of topics. It stops
// scheduling new requests once ctx is done.
func FetchAll(ctx context.Context, gw Gateway, topics []Topic, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = DefaultConcurrency
	}
	results := make([]Result, len(topics))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, t := range topics {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			results[i] = Result{Topic: t, Text: gw.FetchExplanation(gctx, t.Name, t.Kind)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, ctx.Err()
}
