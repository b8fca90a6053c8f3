package source

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fxsml/gopull"
	"github.com/fxsml/gopull/internal/test"
)

func TestLines(t *testing.T) {
	r := strings.NewReader("alpha\nbeta\n\ngamma")
	got := test.Collect(t, Lines(r))
	require.Equal(t, []string{"alpha", "beta", "", "gamma"}, got)
}

func TestLines_TrailingNewline(t *testing.T) {
	got := test.Collect(t, Lines(strings.NewReader("one\ntwo\n")))
	require.Equal(t, []string{"one", "two"}, got)
}

func TestLines_Empty(t *testing.T) {
	got := test.Collect(t, Lines(strings.NewReader("")))
	require.Empty(t, got)
}

// failingReader yields its data on the first read and fails afterward.
type failingReader struct {
	data string
	read bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if !r.read {
		r.read = true
		return copy(p, r.data), nil
	}
	return 0, errors.New("disk gone")
}

func TestLines_ReadError(t *testing.T) {
	snk, out := gopull.ToSlice[string]()
	_, err := gopull.Run(context.Background(),
		gopull.Compose(Lines(&failingReader{data: "one\ntwo\npart"}), snk))
	require.ErrorContains(t, err, "disk gone")
	require.ErrorIs(t, err, gopull.ErrFailure)
	require.False(t, out.IsSet())
}
