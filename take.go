package gopull

import "context"

// Take forwards up to n values and then terminates. It consumes
// exactly as many values as it forwards: the value after the nth is
// never demanded. When upstream ends first the upstream result is
// relayed. n <= 0 consumes nothing.
//
// Take decides its own termination, so its result type is fixed to
// Unit; every stage composed with it must share that result type.
func Take[A any](n int) Transducer[A, A, Unit] {
	return func(ctx context.Context, up Upstream[Unit, A, Unit], down Downstream[Unit, A]) (Unit, error) {
		for range n {
			if _, err := down.Await(ctx); err != nil {
				return Unit{}, err
			}
			a, ok, err := up.Request(ctx, Unit{})
			if err != nil {
				return Unit{}, err
			}
			if !ok {
				return up.Result()
			}
			if err := down.Respond(ctx, a); err != nil {
				return Unit{}, err
			}
		}
		return Unit{}, nil
	}
}

// TakeWhile forwards values while p holds and terminates at the first
// value that fails p. The failing value is consumed but not
// forwarded, since p cannot be evaluated without drawing the value
// from upstream.
func TakeWhile[A any](p func(A) bool) Transducer[A, A, Unit] {
	return func(ctx context.Context, up Upstream[Unit, A, Unit], down Downstream[Unit, A]) (Unit, error) {
		for {
			if _, err := down.Await(ctx); err != nil {
				return Unit{}, err
			}
			a, ok, err := up.Request(ctx, Unit{})
			if err != nil {
				return Unit{}, err
			}
			if !ok {
				return up.Result()
			}
			if !p(a) {
				return Unit{}, nil
			}
			if err := down.Respond(ctx, a); err != nil {
				return Unit{}, err
			}
		}
	}
}
