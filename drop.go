package gopull

import "context"

// Drop discards the first n values and forwards everything after
// them. Unlike Take it never terminates on its own, so upstream's
// result type passes through unchanged, including when upstream ends
// inside the discarded prefix.
func Drop[A, R any](n int) Transducer[A, A, R] {
	return func(ctx context.Context, up Upstream[Unit, A, R], down Downstream[Unit, A]) (R, error) {
		var zero R
		if _, err := down.Await(ctx); err != nil {
			return zero, err
		}
		for range n {
			_, ok, err := up.Request(ctx, Unit{})
			if err != nil {
				return zero, err
			}
			if !ok {
				return up.Result()
			}
		}
		for {
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
			if _, err := down.Await(ctx); err != nil {
				return zero, err
			}
		}
	}
}

// DropWhile discards values while p holds. The first value that fails
// p is forwarded, and from then on everything passes through without
// consulting p again.
func DropWhile[A, R any](p func(A) bool) Transducer[A, A, R] {
	return func(ctx context.Context, up Upstream[Unit, A, R], down Downstream[Unit, A]) (R, error) {
		var zero R
		if _, err := down.Await(ctx); err != nil {
			return zero, err
		}
		for {
			a, ok, err := up.Request(ctx, Unit{})
			if err != nil {
				return zero, err
			}
			if !ok {
				return up.Result()
			}
			if p(a) {
				continue
			}
			if err := down.Respond(ctx, a); err != nil {
				return zero, err
			}
			break
		}
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
