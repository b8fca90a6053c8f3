package gopull

import "context"

// FromSlice produces the elements of s in order and then terminates.
func FromSlice[V any](s []V) Source[V, Unit] {
	return func(ctx context.Context, _ Upstream[Never, Unit, Unit], down Downstream[Unit, V]) (Unit, error) {
		for _, v := range s {
			if _, err := down.Await(ctx); err != nil {
				return Unit{}, err
			}
			if err := down.Respond(ctx, v); err != nil {
				return Unit{}, err
			}
		}
		return Unit{}, nil
	}
}

// FromRange produces the integers 0 through n-1 and then terminates.
func FromRange(n int) Source[int, Unit] {
	return func(ctx context.Context, _ Upstream[Never, Unit, Unit], down Downstream[Unit, int]) (Unit, error) {
		for i := range n {
			if _, err := down.Await(ctx); err != nil {
				return Unit{}, err
			}
			if err := down.Respond(ctx, i); err != nil {
				return Unit{}, err
			}
		}
		return Unit{}, nil
	}
}

// FromFunc produces the values returned by next until next reports
// false. next runs once per demand, never ahead of it.
func FromFunc[V any](next func() (V, bool)) Source[V, Unit] {
	return func(ctx context.Context, _ Upstream[Never, Unit, Unit], down Downstream[Unit, V]) (Unit, error) {
		for {
			if _, err := down.Await(ctx); err != nil {
				return Unit{}, err
			}
			v, ok := next()
			if !ok {
				return Unit{}, nil
			}
			if err := down.Respond(ctx, v); err != nil {
				return Unit{}, err
			}
		}
	}
}

// Repeat produces v for every demand, forever. It only ends by
// abandonment, so its result type is free.
func Repeat[V, R any](v V) Source[V, R] {
	return func(ctx context.Context, _ Upstream[Never, Unit, R], down Downstream[Unit, V]) (R, error) {
		var zero R
		for {
			if _, err := down.Await(ctx); err != nil {
				return zero, err
			}
			if err := down.Respond(ctx, v); err != nil {
				return zero, err
			}
		}
	}
}
