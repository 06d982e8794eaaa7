package simapi

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Retry invokes fn up to retries+1 times, doubling the wait between
// attempts (plain exponential backoff, no jitter). Only the last error is
// returned. The wait honors context cancellation.
func Retry[T any](ctx context.Context, fn func(context.Context) (T, error), retries int, wait time.Duration) (T, error) {
	for {
		result, err := fn(ctx)
		if err == nil || retries == 0 {
			return result, err
		}
		retries--

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			var zero T
			return zero, ctx.Err()
		case <-timer.C:
		}
		wait *= 2
	}
}

// Batch runs the given calls concurrently and collects their results in
// call order. The first error cancels the shared context and is returned.
func Batch[T any](ctx context.Context, calls []func(context.Context) (T, error)) ([]T, error) {
	results := make([]T, len(calls))
	g, ctx := errgroup.WithContext(ctx)
	for i, call := range calls {
		i, call := i, call
		g.Go(func() error {
			result, err := call(ctx)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
