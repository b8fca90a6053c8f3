package gopull

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Generalize lifts a Transducer, whose demands carry no data, into a
// stage that passes demand payloads of type X through. A mediator
// keeps the payload of the most recent downstream demand in a slot
// and attaches the slot's value to every demand the embedded stage
// sends upstream; the slot is replaced whenever a new downstream
// demand arrives. The slot is seeded by the first downstream demand,
// before the embedded stage first requests.
//
// Generalize distributes over composition: lifting a composed chain
// behaves like composing the lifted stages. Lifting Cat yields a
// stage that forwards demand payloads and values both unchanged.
func Generalize[X, A, B, R any](t Transducer[A, B, R]) Stage[X, A, X, B, R] {
	return func(ctx context.Context, up Upstream[X, A, R], down Downstream[X, B]) (R, error) {
		var zero R
		// lin carries the embedded stage's upstream traffic, served by
		// the mediator; lout carries its downstream traffic, driven by
		// the mediator.
		lin := newLink[Unit, A, R]()
		lout := newLink[Unit, B, R]()
		cctx, cancel := context.WithCancel(ctx)
		var g errgroup.Group
		defer func() {
			cancel()
			g.Wait()
		}()
		g.Go(func() error {
			res, err := runGuarded(func() (R, error) {
				return t(cctx, Upstream[Unit, A, R]{l: lin}, Downstream[Unit, B]{req: lout.req, val: lout.val})
			})
			lout.complete(res, err)
			return nil
		})

		x, err := down.Await(ctx)
		if err != nil {
			return zero, err
		}
		slot := x
		reqc := lin.req
		for {
			select {
			case lout.req <- Unit{}:
			case <-lout.done:
				return lout.result()
			case <-ctx.Done():
				return zero, ctx.Err()
			}
			for served := false; !served; {
				select {
				case <-reqc:
					a, ok, err := up.Request(ctx, slot)
					if err != nil {
						return zero, err
					}
					if !ok {
						// Publish upstream's termination to the
						// embedded stage and let it wind down on its
						// own terms. The nil reqc keeps a late
						// request from reaching the completed link.
						res, rerr := up.Result()
						lin.complete(res, rerr)
						reqc = nil
						continue
					}
					select {
					case lin.val <- a:
					case <-cctx.Done():
						return zero, cctx.Err()
					}
				case b := <-lout.val:
					if err := down.Respond(ctx, b); err != nil {
						return zero, err
					}
					x, err := down.Await(ctx)
					if err != nil {
						return zero, err
					}
					slot = x
					served = true
				case <-lout.done:
					return lout.result()
				case <-ctx.Done():
					return zero, ctx.Err()
				}
			}
		}
	}
}
