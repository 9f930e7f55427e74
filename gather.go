package nestwalk

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Gather runs fn(ctx, i) for every i in [0, n) on its own goroutine and
// returns the results in the order the calls completed. The first error
// cancels the context passed to the remaining calls and is returned with a
// nil result. Gather returns only after every call has finished.
func Gather[T any](ctx context.Context, n int, fn func(ctx context.Context, i int) (T, error), opts ...GatherOpt) ([]T, error) {
	if n <= 0 {
		return []T{}, nil
	}
	results := make(chan T, n)
	if err := fanOut(ctx, n, lastOpt(opts), func(ctx context.Context, i int) error {
		v, err := fn(ctx, i)
		if err != nil {
			return err
		}
		results <- v
		return nil
	}); err != nil {
		return nil, err
	}
	close(results)
	out := make([]T, 0, n)
	for v := range results {
		out = append(out, v)
	}
	return out, nil
}

// GatherOrdered is Gather with results indexed by i instead of completion
// order.
func GatherOrdered[T any](ctx context.Context, n int, fn func(ctx context.Context, i int) (T, error), opts ...GatherOpt) ([]T, error) {
	if n <= 0 {
		return []T{}, nil
	}
	out := make([]T, n)
	if err := fanOut(ctx, n, lastOpt(opts), func(ctx context.Context, i int) error {
		v, err := fn(ctx, i)
		if err != nil {
			return err
		}
		out[i] = v
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

func fanOut(ctx context.Context, n int, opt GatherOpt, fn func(ctx context.Context, i int) error) error {
	eg, egCtx := errgroup.WithContext(ctx)
	if opt.Limit > 0 {
		eg.SetLimit(opt.Limit)
	}
	for i := 0; i < n; i++ {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			return fn(egCtx, i)
		})
	}
	return eg.Wait()
}
