package source

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/fxsml/gopull"
)

// pull builds a source that draws one value per demand from fetch.
// fetch reports done = true for a clean end of the stream; any error
// terminates the stage with that error.
func pull[V any](fetch func(ctx context.Context) (V, bool, error)) gopull.Source[V, gopull.Unit] {
	return func(ctx context.Context, _ gopull.Upstream[gopull.Never, gopull.Unit, gopull.Unit], down gopull.Downstream[gopull.Unit, V]) (gopull.Unit, error) {
		for {
			if _, err := down.Await(ctx); err != nil {
				return gopull.Unit{}, err
			}
			v, done, err := fetch(ctx)
			if err != nil {
				return gopull.Unit{}, err
			}
			if done {
				return gopull.Unit{}, nil
			}
			if err := down.Respond(ctx, v); err != nil {
				return gopull.Unit{}, err
			}
		}
	}
}

// Lines produces the successive lines of r, without the trailing
// newline, and terminates cleanly at EOF. A read error terminates the
// stage with that error. The reader is consumed as the pipeline
// demands, so the source is not restartable.
func Lines(r io.Reader) gopull.Source[string, gopull.Unit] {
	sc := bufio.NewScanner(r)
	return pull(func(_ context.Context) (string, bool, error) {
		if sc.Scan() {
			return sc.Text(), false, nil
		}
		if err := sc.Err(); err != nil {
			return "", false, fmt.Errorf("scan line: %w", err)
		}
		return "", true, nil
	})
}
