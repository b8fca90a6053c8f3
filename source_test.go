package gopull

import "testing"

func TestFromSlice(t *testing.T) {
	got := collect(t, FromSlice([]string{"a", "b", "c"}))
	if !equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("unexpected values %v", got)
	}
	if got := collect(t, FromSlice[int](nil)); len(got) != 0 {
		t.Fatalf("expected no values from a nil slice, got %v", got)
	}
}

func TestFromFunc(t *testing.T) {
	i := 0
	next := func() (int, bool) {
		if i == 3 {
			return 0, false
		}
		i++
		return i * i, true
	}
	got := collect(t, FromFunc(next))
	if !equal(got, []int{1, 4, 9}) {
		t.Fatalf("unexpected values %v", got)
	}
}

func TestFromFunc_RunsOncePerDemand(t *testing.T) {
	calls := 0
	next := func() (int, bool) {
		calls++
		return calls, true
	}
	got := collect(t, Compose(FromFunc(next), Take[int](2)))
	if !equal(got, []int{1, 2}) {
		t.Fatalf("unexpected values %v", got)
	}
	if calls != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}
}

func TestRepeat(t *testing.T) {
	got := collect(t, Compose(Repeat[string, Unit]("x"), Take[string](4)))
	if !equal(got, []string{"x", "x", "x", "x"}) {
		t.Fatalf("unexpected values %v", got)
	}
}
