package gopull

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Pair groups one value from each of two zipped streams.
type Pair[A, B any] struct {
	First  A
	Second B
}

// ZipWith combines two sources into one that produces f(a, b) for
// each pair drawn in lock step. Per demand it samples a first and b
// second, so when a is exhausted b is not sampled at all. The
// combined source terminates with the result of whichever side
// terminates first; the other side is abandoned.
func ZipWith[A, B, C, R any](f func(A, B) C, a Source[A, R], b Source[B, R]) Source[C, R] {
	return func(ctx context.Context, _ Upstream[Never, Unit, R], down Downstream[Unit, C]) (R, error) {
		var zero R
		la := newLink[Unit, A, R]()
		lb := newLink[Unit, B, R]()
		cctx, cancel := context.WithCancel(ctx)
		var g errgroup.Group
		defer func() {
			cancel()
			g.Wait()
		}()
		spawn(cctx, &g, a, Upstream[Never, Unit, R]{l: closedEnd[Never, Unit, R]()}, la)
		spawn(cctx, &g, b, Upstream[Never, Unit, R]{l: closedEnd[Never, Unit, R]()}, lb)

		ua := Upstream[Unit, A, R]{l: la}
		ub := Upstream[Unit, B, R]{l: lb}
		for {
			if _, err := down.Await(ctx); err != nil {
				return zero, err
			}
			av, ok, err := ua.Request(ctx, Unit{})
			if err != nil {
				return zero, err
			}
			if !ok {
				return ua.Result()
			}
			bv, ok, err := ub.Request(ctx, Unit{})
			if err != nil {
				return zero, err
			}
			if !ok {
				return ub.Result()
			}
			if err := down.Respond(ctx, f(av, bv)); err != nil {
				return zero, err
			}
		}
	}
}

// Zip combines two sources into one producing the values side by
// side. It stops with the shorter stream, like ZipWith.
func Zip[A, B, R any](a Source[A, R], b Source[B, R]) Source[Pair[A, B], R] {
	return ZipWith(func(x A, y B) Pair[A, B] {
		return Pair[A, B]{First: x, Second: y}
	}, a, b)
}
