package gopull

import "testing"

func TestFilter(t *testing.T) {
	even := func(i int) bool { return i%2 == 0 }
	got := collect(t, Compose(FromRange(10), Filter[int, Unit](even)))
	if !equal(got, []int{0, 2, 4, 6, 8}) {
		t.Fatalf("unexpected values %v", got)
	}
}

func TestFilter_NothingPasses(t *testing.T) {
	got := collect(t, Compose(FromRange(5), Filter[int, Unit](func(int) bool { return false })))
	if len(got) != 0 {
		t.Fatalf("expected no values, got %v", got)
	}
}

func TestFilter_ComposesLikeConjunction(t *testing.T) {
	even := func(i int) bool { return i%2 == 0 }
	big := func(i int) bool { return i > 5 }

	stacked := collect(t, Compose(Compose(FromRange(20), Filter[int, Unit](even)), Filter[int, Unit](big)))
	fused := collect(t, Compose(FromRange(20), Filter[int, Unit](func(i int) bool { return even(i) && big(i) })))
	if !equal(stacked, fused) {
		t.Fatalf("stacked filters yielded %v, fused %v", stacked, fused)
	}
}

func TestFilter_DiscardsWithoutServingDemand(t *testing.T) {
	src, count := countingRange(10)
	even := Filter[int, Unit](func(i int) bool { return i%2 == 0 })
	got := collect(t, Compose(Compose(src, even), Take[int](2)))
	if !equal(got, []int{0, 2}) {
		t.Fatalf("unexpected values %v", got)
	}
	// Two demands drew three values: 1 was consumed and discarded
	// while the second demand was held.
	if *count != 3 {
		t.Fatalf("expected 3 values consumed, got %d", *count)
	}
}
