package gopull

import "context"

// Scan forwards a running left fold of the stream: first init itself,
// then the accumulator after each consumed value. A stream of n
// values becomes a stream of n+1 accumulators.
func Scan[A, B, R any](init B, step func(B, A) B) Transducer[A, B, R] {
	return func(ctx context.Context, up Upstream[Unit, A, R], down Downstream[Unit, B]) (R, error) {
		var zero R
		if _, err := down.Await(ctx); err != nil {
			return zero, err
		}
		if err := down.Respond(ctx, init); err != nil {
			return zero, err
		}
		acc := init
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
			acc = step(acc, a)
			if err := down.Respond(ctx, acc); err != nil {
				return zero, err
			}
		}
	}
}
