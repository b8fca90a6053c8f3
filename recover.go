package gopull

import (
	"fmt"
	"runtime/debug"
)

// RecoveryError wraps a panic value with the stack trace.
// This allows panics to be converted to regular errors and handled gracefully.
type RecoveryError struct {
	// PanicValue is the original value that was passed to panic().
	PanicValue any
	// StackTrace contains the full stack trace at the point of panic.
	StackTrace string
}

func (e *RecoveryError) Error() string {
	return fmt.Sprintf("panic recovered: %v", e.PanicValue)
}

// WithRecover converts a panic in the driving stage of a Run into a
// RecoveryError instead of crashing the process. Stages spawned by
// Compose and the combiners are always guarded this way; WithRecover
// extends the guard to the stage Run drives on the calling goroutine.
func WithRecover() RunOption {
	return func(cfg *runConfig) {
		cfg.recover = true
	}
}

func runGuarded[R any](run func() (R, error)) (res R, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero R
			res = zero
			err = &RecoveryError{
				PanicValue: r,
				StackTrace: string(debug.Stack()),
			}
		}
	}()
	return run()
}
