package gopull

import "context"

// Filter forwards the values from upstream for which p returns true.
// Discarded values are consumed without serving the held demand, so
// one downstream demand may draw any number of upstream values.
func Filter[A, R any](p func(A) bool) Transducer[A, A, R] {
	return func(ctx context.Context, up Upstream[Unit, A, R], down Downstream[Unit, A]) (R, error) {
		var zero R
		for {
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
					if err := down.Respond(ctx, a); err != nil {
						return zero, err
					}
					break
				}
			}
		}
	}
}
