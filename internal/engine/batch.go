package engine

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency bounds SelectBatch parallelism when limit <= 0.
const DefaultBatchConcurrency = 8

// SelectBatch runs independent requests concurrently.
//
// Results are returned in request order. Each request gets its own
// Recorder (when recording is enabled), so attribution never crosses
// requests. On the first failure the remaining unstarted requests are
// skipped and that error is returned with no results.
func (e *Engine) SelectBatch(ctx context.Context, reqs []Request, limit int) ([]*Result, error) {
	if limit <= 0 {
		limit = DefaultBatchConcurrency
	}

	results := make([]*Result, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i := range reqs {
		i := i
		g.Go(func() error {
			res, err := e.Select(gctx, reqs[i])
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
