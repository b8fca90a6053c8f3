// Package test provides pipeline fixtures shared by package tests.
package test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fxsml/gopull"
)

// Collect runs src into a slice sink and returns the collected values.
// It fails the test when the run does not complete cleanly.
func Collect[V any](t *testing.T, src gopull.Source[V, gopull.Unit]) []V {
	t.Helper()
	snk, out := gopull.ToSlice[V]()
	_, err := gopull.Run(context.Background(), gopull.Compose(src, snk))
	require.NoError(t, err)
	vals, ok := out.Get()
	require.True(t, ok, "sink must report a slice on a clean run")
	return vals
}

// CollectN is Collect limited to the first n values, for sources that
// never end on their own.
func CollectN[V any](t *testing.T, src gopull.Source[V, gopull.Unit], n int) []V {
	t.Helper()
	return Collect(t, gopull.Compose(src, gopull.Take[V](n)))
}

// Counting wraps vals in a source that counts how many values were
// demanded.
func Counting[V any](vals []V) (gopull.Source[V, gopull.Unit], *int) {
	count := new(int)
	var src gopull.Source[V, gopull.Unit] = func(ctx context.Context, _ gopull.Upstream[gopull.Never, gopull.Unit, gopull.Unit], down gopull.Downstream[gopull.Unit, V]) (gopull.Unit, error) {
		for _, v := range vals {
			if _, err := down.Await(ctx); err != nil {
				return gopull.Unit{}, err
			}
			*count++
			if err := down.Respond(ctx, v); err != nil {
				return gopull.Unit{}, err
			}
		}
		return gopull.Unit{}, nil
	}
	return src, count
}
