package gopull

import "context"

// All consumes values until one fails p and reports the verdict
// through the returned cell: false as soon as a value fails, true if
// upstream ends with every value passing. After a failing value the
// stage stops demanding, so later values are never consumed, and the
// cell is written at most once per run.
func All[A any](p func(A) bool) (Sink[A, Unit], *Once[bool]) {
	out := NewOnce(true)
	stage := func(ctx context.Context, up Upstream[Unit, A, Unit], _ Downstream[Unit, Never]) (Unit, error) {
		for {
			a, ok, err := up.Request(ctx, Unit{})
			if err != nil {
				return Unit{}, err
			}
			if !ok {
				return up.Result()
			}
			if !p(a) {
				out.Set(false)
				return Unit{}, nil
			}
		}
	}
	return stage, out
}

// Any consumes values until one satisfies p and reports the verdict
// through the returned cell: true as soon as a value passes, false if
// upstream ends with no value passing.
func Any[A any](p func(A) bool) (Sink[A, Unit], *Once[bool]) {
	out := NewOnce(false)
	stage := func(ctx context.Context, up Upstream[Unit, A, Unit], _ Downstream[Unit, Never]) (Unit, error) {
		for {
			a, ok, err := up.Request(ctx, Unit{})
			if err != nil {
				return Unit{}, err
			}
			if !ok {
				return up.Result()
			}
			if p(a) {
				out.Set(true)
				return Unit{}, nil
			}
		}
	}
	return stage, out
}

// Head consumes at most one value and reports it through the returned
// cell. On an empty stream the cell stays unset; check it with Get or
// IsSet.
func Head[A any]() (Sink[A, Unit], *Once[A]) {
	out := NewOnce(*new(A))
	stage := func(ctx context.Context, up Upstream[Unit, A, Unit], _ Downstream[Unit, Never]) (Unit, error) {
		a, ok, err := up.Request(ctx, Unit{})
		if err != nil {
			return Unit{}, err
		}
		if !ok {
			return up.Result()
		}
		out.Set(a)
		return Unit{}, nil
	}
	return stage, out
}

// Fold consumes the whole stream, threading an accumulator through
// step, and reports the final accumulator through the returned cell
// when upstream ends cleanly. An empty stream reports init; a failed
// run leaves the cell unset.
func Fold[A, B any](init B, step func(B, A) B) (Sink[A, Unit], *Once[B]) {
	out := NewOnce(init)
	stage := func(ctx context.Context, up Upstream[Unit, A, Unit], _ Downstream[Unit, Never]) (Unit, error) {
		acc := init
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
			acc = step(acc, a)
		}
	}
	return stage, out
}
