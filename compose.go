package gopull

import (
	"context"
	"runtime/debug"

	"golang.org/x/sync/errgroup"
)

// Compose connects up's output to down's input and returns the
// combined stage. The pair shares the termination result type R: the
// first of the two to terminate supplies the result of the whole, and
// the other side is abandoned.
//
// down runs on the caller's goroutine and drives the pair; up runs on
// its own goroutine and only works while serving a demand. When down
// terminates first, up's context is canceled and Compose waits for it
// to exit before returning. When up terminates first, down observes it
// on its next request and normally relays the result.
//
// Compose is associative, so a chain can be built in any grouping:
//
//	Compose(src, Compose(Take[int](3), snk))
func Compose[UQ, UV, Q, V, DQ, DV, R any](up Stage[UQ, UV, Q, V, R], down Stage[Q, V, DQ, DV, R]) Stage[UQ, UV, DQ, DV, R] {
	return func(ctx context.Context, outerUp Upstream[UQ, UV, R], outerDown Downstream[DQ, DV]) (R, error) {
		l := newLink[Q, V, R]()
		cctx, cancel := context.WithCancel(ctx)
		var g errgroup.Group
		defer func() {
			cancel()
			g.Wait()
		}()

		spawn(cctx, &g, up, outerUp, l)
		return down(ctx, Upstream[Q, V, R]{l: l}, outerDown)
	}
}

// spawn runs body as the upstream side of l. The body's termination,
// including one forced by a panic, is published on l so the
// downstream side can observe it.
func spawn[UQ, UV, Q, V, R any](ctx context.Context, g *errgroup.Group, body Stage[UQ, UV, Q, V, R], up Upstream[UQ, UV, R], l *link[Q, V, R]) {
	g.Go(func() error {
		var (
			res R
			err error
		)
		defer func() {
			if r := recover(); r != nil {
				var zero R
				res = zero
				err = &RecoveryError{
					PanicValue: r,
					StackTrace: string(debug.Stack()),
				}
			}
			l.complete(res, err)
		}()
		res, err = body(ctx, up, Downstream[Q, V]{req: l.req, val: l.val})
		return nil
	})
}
