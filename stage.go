package gopull

import "context"

// Unit is the demand payload for stages that carry no data upstream.
// It is the payload type of every demand issued by the stages in this
// package.
type Unit struct{}

// Never marks a direction of the protocol that a stage does not use.
// A Source never requests from upstream and a Sink never responds
// downstream, so those directions are typed Never. A stage must not
// request or respond in a direction typed Never.
type Never struct{}

// Stage is the body of a pipeline stage. It runs until it decides to
// terminate, its upstream neighbor terminates, or the context is
// canceled, and returns its termination result.
//
// A stage talks to its upstream neighbor through up and to its
// downstream neighbor through down. UQ and UV are the demand payload
// sent upstream and the value received back; DQ and DV are the demand
// payload received from downstream and the value sent back. R is the
// termination result shared by every stage of a composed chain.
//
// The protocol is strictly demand driven. A stage that has a
// downstream neighbor must hold a demand received via Await before it
// requests from upstream or responds downstream. One held demand
// permits any number of upstream requests, which is how stages discard
// input without producing output. Terminating while holding an
// unserved demand is legal: termination answers the demand.
type Stage[UQ, UV, DQ, DV, R any] func(ctx context.Context, up Upstream[UQ, UV, R], down Downstream[DQ, DV]) (R, error)

// Source produces values of type V and never requests from upstream.
type Source[V, R any] = Stage[Never, Unit, Unit, V, R]

// Transducer consumes values of type A and produces values of type B.
type Transducer[A, B, R any] = Stage[Unit, A, Unit, B, R]

// Sink consumes values of type A and never responds downstream. Sinks
// drive a pipeline: they request without awaiting a demand first.
type Sink[A, R any] = Stage[Unit, A, Unit, Never, R]

// Effect is a fully composed pipeline with no open ends. It is the
// only form Run accepts.
type Effect[R any] = Stage[Never, Unit, Unit, Never, R]

// link carries the rendezvous channels between two neighboring stages.
// req and val are unbuffered, so a demand and its answer each hand
// control from one side to the other; at most one side of a link is
// runnable at a time. done is closed by the upstream side after res
// and err are set.
type link[Q, V, R any] struct {
	req  chan Q
	val  chan V
	done chan struct{}

	res R
	err error
}

func newLink[Q, V, R any]() *link[Q, V, R] {
	return &link[Q, V, R]{
		req:  make(chan Q),
		val:  make(chan V),
		done: make(chan struct{}),
	}
}

// complete publishes the upstream side's termination. It must be
// called exactly once.
func (l *link[Q, V, R]) complete(res R, err error) {
	l.res = res
	l.err = err
	close(l.done)
}

func (l *link[Q, V, R]) result() (R, error) {
	<-l.done
	return l.res, l.err
}

// Upstream is a stage's handle to its upstream neighbor.
type Upstream[Q, V, R any] struct {
	l *link[Q, V, R]
}

// Request sends a demand carrying q upstream and blocks until the
// neighbor answers. It returns (v, true, nil) when a value arrives,
// (zero, false, nil) when the neighbor terminated instead of
// answering, and (zero, false, err) when the context ended first. After
// ok == false the neighbor's outcome is available from Result, and the
// common pattern is to relay it:
//
//	v, ok, err := up.Request(ctx, Unit{})
//	if err != nil {
//		return zero, err
//	}
//	if !ok {
//		return up.Result()
//	}
func (u Upstream[Q, V, R]) Request(ctx context.Context, q Q) (V, bool, error) {
	var zero V
	select {
	case u.l.req <- q:
	case <-u.l.done:
		return zero, false, nil
	case <-ctx.Done():
		return zero, false, ctx.Err()
	}
	select {
	case v := <-u.l.val:
		return v, true, nil
	case <-u.l.done:
		return zero, false, nil
	case <-ctx.Done():
		return zero, false, ctx.Err()
	}
}

// Result returns the upstream neighbor's termination result and error.
// It blocks until the neighbor has terminated, so it must only be
// called after Request reported ok == false.
func (u Upstream[Q, V, R]) Result() (R, error) {
	return u.l.result()
}

// Downstream is a stage's handle to its downstream neighbor.
type Downstream[Q, V any] struct {
	req <-chan Q
	val chan<- V
}

// Await blocks until the downstream neighbor demands the next value
// and returns the demand's payload.
func (d Downstream[Q, V]) Await(ctx context.Context) (Q, error) {
	var zero Q
	select {
	case q := <-d.req:
		return q, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Respond delivers v to the downstream neighbor, serving the demand
// received by the last Await. It blocks until the neighbor has taken
// the value.
func (d Downstream[Q, V]) Respond(ctx context.Context, v V) error {
	select {
	case d.val <- v:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
