package gopull

import (
	"context"
	"testing"
)

func TestZip(t *testing.T) {
	a := FromSlice([]int{1, 2, 3})
	b := FromSlice([]string{"one", "two"})
	got := collect(t, Zip(a, b))
	want := []Pair[int, string]{
		{First: 1, Second: "one"},
		{First: 2, Second: "two"},
	}
	if !equal(got, want) {
		t.Fatalf("unexpected pairs %v", got)
	}
}

func TestZipWith(t *testing.T) {
	sum := func(a, b int) int { return a + b }
	got := collect(t, ZipWith(sum, FromRange(4), FromSlice([]int{10, 20, 30, 40})))
	if !equal(got, []int{10, 21, 32, 43}) {
		t.Fatalf("unexpected values %v", got)
	}
}

func TestZipWith_RightEndsFirst(t *testing.T) {
	sum := func(a, b int) int { return a + b }
	got := collect(t, ZipWith(sum, FromSlice([]int{1, 2, 3}), FromSlice([]int{10, 20})))
	if !equal(got, []int{11, 22}) {
		t.Fatalf("unexpected values %v", got)
	}
}

func TestZipWith_LeftEndsFirst(t *testing.T) {
	b, count := countingSlice([]int{10, 20, 30})
	got := collect(t, ZipWith(func(a, b int) int { return a + b }, FromRange(2), b))
	if !equal(got, []int{10, 21}) {
		t.Fatalf("unexpected values %v", got)
	}
	// The left side is sampled first, so once it is exhausted the
	// right side is not sampled again.
	if *count != 2 {
		t.Fatalf("expected 2 values drawn from the right side, got %d", *count)
	}
}

func TestZip_ResultOfFirstExhausted(t *testing.T) {
	var a Source[int, string] = func(ctx context.Context, _ Upstream[Never, Unit, string], down Downstream[Unit, int]) (string, error) {
		if _, err := down.Await(ctx); err != nil {
			return "", err
		}
		if err := down.Respond(ctx, 1); err != nil {
			return "", err
		}
		if _, err := down.Await(ctx); err != nil {
			return "", err
		}
		return "left done", nil
	}
	b := Repeat[int, string](7)

	res, err := Run(context.Background(),
		Compose(Zip(a, b), Discard[Pair[int, int], string]()))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res != "left done" {
		t.Fatalf("expected the exhausted side's result, got %q", res)
	}
}
