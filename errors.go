package gopull

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrFailure indicates that a pipeline run failed.
	ErrFailure = errors.New("gopull: run failed")
	// ErrCancel indicates that a pipeline run was canceled.
	ErrCancel = errors.New("gopull: run canceled")
)

type errFailure struct {
	cause error
}

func (e *errFailure) Error() string {
	if e.cause != nil {
		return e.cause.Error()
	}
	return ErrFailure.Error()
}

func (e *errFailure) Unwrap() error {
	return fmt.Errorf("%w: %w", ErrFailure, e.cause)
}

func newErrFailure(err error) error {
	return &errFailure{cause: err}
}

type errCancel struct {
	cause error
}

func (e *errCancel) Error() string {
	if e.cause != nil {
		return e.cause.Error()
	}
	return ErrCancel.Error()
}

func (e *errCancel) Unwrap() error {
	return fmt.Errorf("%w: %w", ErrCancel, e.cause)
}

func newErrCancel(err error) error {
	return &errCancel{cause: err}
}

// classifyRunError sorts a run outcome into the cancel or failure
// family so callers can branch on ErrCancel and ErrFailure while
// errors.Is and errors.As still reach the cause.
func classifyRunError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrCancel), errors.Is(err, ErrFailure):
		return err
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return newErrCancel(err)
	default:
		return newErrFailure(err)
	}
}
