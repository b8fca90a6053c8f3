package gopull

import "context"

// Tap runs f on each value and forwards the value unchanged. f
// completes before the value moves downstream. An error from f
// terminates the pipeline with that error.
func Tap[A, R any](f func(context.Context, A) error) Transducer[A, A, R] {
	return func(ctx context.Context, up Upstream[Unit, A, R], down Downstream[Unit, A]) (R, error) {
		var zero R
		for {
			if _, err := down.Await(ctx); err != nil {
				return zero, err
			}
			a, ok, err := up.Request(ctx, Unit{})
			if err != nil {
				return zero, err
			}
			if !ok {
				return up.Result()
			}
			if err := f(ctx, a); err != nil {
				return zero, err
			}
			if err := down.Respond(ctx, a); err != nil {
				return zero, err
			}
		}
	}
}
