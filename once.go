package gopull

// Once is a write-once cell with a default value. The accumulating
// folds return one alongside their stage and write the answer through
// it, since a fold's own termination result carries no data.
//
// Once is not synchronized. A pipeline is a single logical thread of
// control, and every stage goroutine has exited by the time Run
// returns, so writing from a stage and reading after Run is race free.
type Once[T any] struct {
	def T
	val T
	set bool
}

// NewOnce creates a cell that reports def until a value is set.
func NewOnce[T any](def T) *Once[T] {
	return &Once[T]{def: def}
}

// Set writes v into the cell. Only the first write takes effect; Set
// reports whether this was it.
func (o *Once[T]) Set(v T) bool {
	if o.set {
		return false
	}
	o.val = v
	o.set = true
	return true
}

// Value returns the written value, or the default if nothing was
// written.
func (o *Once[T]) Value() T {
	if o.set {
		return o.val
	}
	return o.def
}

// Get returns the written value and whether anything was written.
func (o *Once[T]) Get() (T, bool) {
	return o.val, o.set
}

// IsSet reports whether a value was written.
func (o *Once[T]) IsSet() bool {
	return o.set
}
