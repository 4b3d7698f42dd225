// Package parallel runs independent driver invocations concurrently.
// It adapts the teacher's hand-rolled WorkerPool
// (_examples/gitrdm-gokando/internal/parallel/pool.go) into a bounded,
// error-propagating batch helper built on errgroup.Group: narrower in
// scope (no dynamic scaling, no work stealing) because every item here
// is an independent, single-threaded analysis.Run/Explore call rather
// than a long-lived goal-evaluation task stream.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Job is one unit of batch work: an independent analysis run that
// returns its own result or error.
type Job[T any] func(ctx context.Context) (T, error)

// RunBatch runs jobs concurrently, bounded to at most maxConcurrency at
// once (0 or negative defaults to runtime.NumCPU()). It returns the
// results in the same order as jobs, or the first error encountered —
// errgroup cancels the shared context as soon as one job fails, so
// jobs still in flight are expected to respect ctx.Done().
func RunBatch[T any](ctx context.Context, maxConcurrency int, jobs []Job[T]) ([]T, error) {
	if maxConcurrency <= 0 {
		maxConcurrency = runtime.NumCPU()
	}

	results := make([]T, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrency)

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			r, err := job(gctx)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
