package gopull

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestTap_ForwardsUnchanged(t *testing.T) {
	var seen []int
	spy := Tap[int, Unit](func(_ context.Context, i int) error {
		seen = append(seen, i)
		return nil
	})
	got := collect(t, Compose(FromRange(3), spy))
	if !equal(got, []int{0, 1, 2}) {
		t.Fatalf("unexpected values %v", got)
	}
	if !equal(seen, []int{0, 1, 2}) {
		t.Fatalf("tap saw %v", seen)
	}
}

func TestTap_RunsBeforeForward(t *testing.T) {
	var events []string
	spy := Tap[int, Unit](func(_ context.Context, i int) error {
		events = append(events, fmt.Sprintf("tap %d", i))
		return nil
	})
	snk := ForEach[int, Unit](func(_ context.Context, i int) error {
		events = append(events, fmt.Sprintf("sink %d", i))
		return nil
	})
	if _, err := Run(context.Background(), Compose(Compose(FromRange(2), spy), snk)); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := []string{"tap 0", "sink 0", "tap 1", "sink 1"}
	if !equal(events, want) {
		t.Fatalf("unexpected order %v", events)
	}
}

func TestTap_Error(t *testing.T) {
	boom := errors.New("boom")
	src, count := countingRange(10)
	spy := Tap[int, Unit](func(_ context.Context, i int) error {
		if i == 2 {
			return boom
		}
		return nil
	})
	_, err := Run(context.Background(), Compose(Compose(src, spy), Discard[int, Unit]()))
	if !errors.Is(err, boom) {
		t.Fatalf("expected the tap error, got %v", err)
	}
	if *count != 3 {
		t.Fatalf("expected 3 values consumed, got %d", *count)
	}
}
