package gopull

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Tee forwards the stream unchanged while feeding a copy of every
// value to observer. The observer sees each value before downstream
// does: a value is held in a one-value slot after the observer takes
// it and moves downstream when the observer asks for the next one.
//
// When the observer terminates, the held value (if any) is flushed
// downstream and Tee terminates with the observer's result. When
// upstream terminates, the slot is necessarily empty and the upstream
// result is relayed; the observer is abandoned.
func Tee[A, R any](observer Sink[A, R]) Transducer[A, A, R] {
	return func(ctx context.Context, up Upstream[Unit, A, R], down Downstream[Unit, A]) (R, error) {
		var zero R
		lo := newLink[Unit, A, R]()
		outc := make(chan result[R], 1)
		cctx, cancel := context.WithCancel(ctx)
		var g errgroup.Group
		defer func() {
			cancel()
			g.Wait()
		}()
		g.Go(func() error {
			res, err := runGuarded(func() (R, error) {
				return observer(cctx, Upstream[Unit, A, R]{l: lo}, Downstream[Unit, Never]{})
			})
			outc <- result[R]{res: res, err: err}
			return nil
		})

		var (
			slot A
			full bool
		)
		if _, err := down.Await(ctx); err != nil {
			return zero, err
		}
		for {
			select {
			case <-lo.req:
				// The observer wants the next value; the held one
				// can move downstream now.
				if full {
					if err := down.Respond(ctx, slot); err != nil {
						return zero, err
					}
					full = false
					if _, err := down.Await(ctx); err != nil {
						return zero, err
					}
				}
				a, ok, err := up.Request(ctx, Unit{})
				if err != nil {
					return zero, err
				}
				if !ok {
					return up.Result()
				}
				select {
				case lo.val <- a:
				case <-ctx.Done():
					return zero, ctx.Err()
				}
				slot, full = a, true
			case o := <-outc:
				if full {
					if err := down.Respond(ctx, slot); err != nil {
						return zero, err
					}
				}
				return o.res, o.err
			case <-ctx.Done():
				return zero, ctx.Err()
			}
		}
	}
}

type result[R any] struct {
	res R
	err error
}
