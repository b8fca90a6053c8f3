package gopull

import "context"

// Cat forwards every value from upstream unchanged. It is the
// identity stage: composing with it on either side changes nothing.
func Cat[A, R any]() Transducer[A, A, R] {
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
			if err := down.Respond(ctx, a); err != nil {
				return zero, err
			}
		}
	}
}

// Transform applies f to each value from upstream and forwards the
// result.
func Transform[A, B, R any](f func(A) B) Transducer[A, B, R] {
	return func(ctx context.Context, up Upstream[Unit, A, R], down Downstream[Unit, B]) (R, error) {
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
			if err := down.Respond(ctx, f(a)); err != nil {
				return zero, err
			}
		}
	}
}

// TransformContext applies f to each value from upstream and forwards
// the result. f runs to completion before the result is forwarded,
// and an error from f terminates the stage with that error.
func TransformContext[A, B, R any](f func(context.Context, A) (B, error)) Transducer[A, B, R] {
	return func(ctx context.Context, up Upstream[Unit, A, R], down Downstream[Unit, B]) (R, error) {
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
			b, err := f(ctx, a)
			if err != nil {
				return zero, err
			}
			if err := down.Respond(ctx, b); err != nil {
				return zero, err
			}
		}
	}
}
