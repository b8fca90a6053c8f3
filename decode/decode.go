// Package decode turns text lines into typed values for demand-driven
// pipelines. A Decoder parses one line; Values lifts it into a stage
// that decodes the well-formed prefix of a line stream and stops at
// the first line that does not parse.
package decode

import (
	"context"

	"github.com/fxsml/gopull"
)

// Decoder parses a single line into a value of type T.
type Decoder[T any] interface {
	Decode(line string) (T, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc[T any] func(line string) (T, error)

// Decode calls f.
func (f DecoderFunc[T]) Decode(line string) (T, error) {
	return f(line)
}

// Values decodes each line with d and forwards the values. The first
// line that fails to decode is consumed and ends the stream cleanly:
// a decode failure is the expected end of input, not an error. Wrap a
// decoder that should fail the pipeline in a TransformContext stage
// instead.
func Values[T any](d Decoder[T]) gopull.Transducer[string, T, gopull.Unit] {
	return func(ctx context.Context, up gopull.Upstream[gopull.Unit, string, gopull.Unit], down gopull.Downstream[gopull.Unit, T]) (gopull.Unit, error) {
		for {
			if _, err := down.Await(ctx); err != nil {
				return gopull.Unit{}, err
			}
			line, ok, err := up.Request(ctx, gopull.Unit{})
			if err != nil {
				return gopull.Unit{}, err
			}
			if !ok {
				return up.Result()
			}
			v, derr := d.Decode(line)
			if derr != nil {
				return gopull.Unit{}, nil
			}
			if err := down.Respond(ctx, v); err != nil {
				return gopull.Unit{}, err
			}
		}
	}
}
