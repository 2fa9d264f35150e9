package store

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/FadyFayezYounan/async-result/result"
)

// Guard drives one asynchronous operation through s: it transitions to
// Loading, runs fn, and transitions to Data on success or Error on failure.
// A context already canceled before fn runs becomes the Error payload.
//
// Guard runs fn exactly once on the calling goroutine; callers wanting it in
// the background wrap the call in their own goroutine and watch the store.
func Guard[T any](
	ctx context.Context,
	s *Store[T, error],
	fn func(context.Context) (T, error),
) result.ResultState[T, error] {
	s.SetLoading()
	if err := ctx.Err(); err != nil {
		return s.SetError(err)
	}
	value, err := fn(ctx)
	if err != nil {
		return s.SetError(err)
	}
	return s.SetData(value)
}

// GuardAll runs every fn concurrently and collapses their outcomes with the
// combine precedence: the first failure in argument order wins, otherwise
// Data of all values in argument order. limit bounds the number of fns
// running at once; zero or negative means no bound.
//
// The first failure cancels the shared context, so later fns may surface
// context.Canceled as their own failure; argument order, not completion
// order, still decides which failure is reported.
func GuardAll[T any](
	ctx context.Context,
	limit int,
	fns ...func(context.Context) (T, error),
) result.ResultState[[]T, error] {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	states := make([]result.ResultState[T, error], len(fns))
	for i, fn := range fns {
		g.Go(func() error {
			value, err := fn(ctx)
			if err != nil {
				states[i] = result.Error[T](err)
				return err
			}
			states[i] = result.Data[T, error](value)
			return nil
		})
	}
	_ = g.Wait() // per-slot states carry the failures; combine picks the winner
	return result.Combine(states...)
}
