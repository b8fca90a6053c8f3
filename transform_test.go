package gopull

import (
	"context"
	"fmt"
	"testing"
)

func TestTransform(t *testing.T) {
	src := FromSlice([]string{"a", "bb", "ccc"})
	got := collect(t, Compose(src, Transform[string, int, Unit](func(s string) int { return len(s) })))
	if !equal(got, []int{1, 2, 3}) {
		t.Fatalf("unexpected values %v", got)
	}
}

func TestTransform_ConsumesOnDemand(t *testing.T) {
	src, count := countingRange(10)
	double := Transform[int, int, Unit](func(i int) int { return i * 2 })
	got := collect(t, Compose(Compose(src, double), Take[int](2)))
	if !equal(got, []int{0, 2}) {
		t.Fatalf("unexpected values %v", got)
	}
	if *count != 2 {
		t.Fatalf("expected 2 values consumed, got %d", *count)
	}
}

func TestTransformContext_RunsBeforeForward(t *testing.T) {
	var events []string
	stamp := TransformContext[int, int, Unit](func(_ context.Context, i int) (int, error) {
		events = append(events, fmt.Sprintf("transform %d", i))
		return i, nil
	})
	snk := ForEach[int, Unit](func(_ context.Context, i int) error {
		events = append(events, fmt.Sprintf("sink %d", i))
		return nil
	})

	if _, err := Run(context.Background(), Compose(Compose(FromRange(2), stamp), snk)); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := []string{"transform 0", "sink 0", "transform 1", "sink 1"}
	if !equal(events, want) {
		t.Fatalf("unexpected order %v", events)
	}
}

func TestCat_Identity(t *testing.T) {
	want := []int{0, 1, 2, 3}
	if got := collect(t, Compose(FromRange(4), Cat[int, Unit]())); !equal(got, want) {
		t.Fatalf("cat after source yielded %v", got)
	}
	if got := collect(t, Compose(Compose(FromRange(4), Cat[int, Unit]()), Cat[int, Unit]())); !equal(got, want) {
		t.Fatalf("stacked cat yielded %v", got)
	}
}
