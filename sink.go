package gopull

import "context"

// ToSlice consumes the whole stream and reports the collected values
// through the returned cell. The cell is only written when upstream
// ends cleanly; a failed run leaves it unset.
func ToSlice[A any]() (Sink[A, Unit], *Once[[]A]) {
	out := NewOnce[[]A](nil)
	stage := func(ctx context.Context, up Upstream[Unit, A, Unit], _ Downstream[Unit, Never]) (Unit, error) {
		var acc []A
		for {
			a, ok, err := up.Request(ctx, Unit{})
			if err != nil {
				return Unit{}, err
			}
			if !ok {
				res, rerr := up.Result()
				if rerr == nil {
					out.Set(acc)
				}
				return res, rerr
			}
			acc = append(acc, a)
		}
	}
	return stage, out
}

// ForEach consumes the whole stream, running f on each value. An
// error from f terminates the pipeline with that error.
func ForEach[A, R any](f func(context.Context, A) error) Sink[A, R] {
	return func(ctx context.Context, up Upstream[Unit, A, R], _ Downstream[Unit, Never]) (R, error) {
		var zero R
		for {
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
		}
	}
}

// Discard consumes the whole stream and drops every value.
func Discard[A, R any]() Sink[A, R] {
	return func(ctx context.Context, up Upstream[Unit, A, R], _ Downstream[Unit, Never]) (R, error) {
		var zero R
		for {
			_, ok, err := up.Request(ctx, Unit{})
			if err != nil {
				return zero, err
			}
			if !ok {
				return up.Result()
			}
		}
	}
}
