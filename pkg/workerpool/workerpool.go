// Package workerpool provides bounded concurrent processing.
package workerpool

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Process calls process for every item with at most workerCount calls in flight.
// The first error cancels the context handed to the remaining calls, invokes onCancel once and is
// returned. Items not yet started when the context is canceled are skipped.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
	onCancel func(),
) error {
	if workerCount < 1 {
		workerCount = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount)

	var cancelOnce sync.Once
	for _, item := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := process(gctx, item); err != nil {
				if onCancel != nil {
					cancelOnce.Do(onCancel)
				}
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
