package gopull

import (
	"context"
	"time"
)

// Run drives a fully composed pipeline to completion and returns its
// result. The effect's driving stage executes on the calling
// goroutine; stages upstream of it run on goroutines owned by the
// composition and have all exited by the time Run returns.
//
// The returned error wraps ErrCancel when the context ended the run
// and ErrFailure for any other failure; errors.Is and errors.As reach
// the underlying cause through the wrapper.
func Run[R any](ctx context.Context, effect Effect[R], opts ...RunOption) (R, error) {
	cfg := parseRunConfig(opts)

	start := time.Now()
	cfg.logger.Debug("GOPULL: Run started", "run_id", cfg.runID, "name", cfg.name)

	body := func() (R, error) {
		return effect(ctx, Upstream[Never, Unit, R]{l: closedEnd[Never, Unit, R]()}, Downstream[Unit, Never]{})
	}

	var (
		res R
		err error
	)
	if cfg.recover {
		res, err = runGuarded(body)
	} else {
		res, err = body()
	}
	err = classifyRunError(err)

	m := &RunMetrics{
		RunID:    cfg.runID,
		Name:     cfg.name,
		Start:    start,
		Duration: time.Since(start),
		Error:    err,
	}
	for _, collect := range cfg.metricsCollector {
		collect(m)
	}

	switch {
	case err == nil:
		cfg.logger.Debug("GOPULL: Run finished", "run_id", cfg.runID, "name", cfg.name, "duration", m.Duration)
	case m.Cancel() == 1:
		cfg.logger.Warn("GOPULL: Run canceled", "run_id", cfg.runID, "name", cfg.name, "error", err)
	default:
		cfg.logger.Error("GOPULL: Run failed", "run_id", cfg.runID, "name", cfg.name, "error", err, "duration", m.Duration)
	}

	return res, err
}

// closedEnd builds the link handed to the upstream side of an effect.
// An effect's driving stage never requests from it, but a degenerate
// effect built from a bare stage might; the pre-completed link makes
// such a request report termination instead of blocking forever.
func closedEnd[Q, V, R any]() *link[Q, V, R] {
	l := newLink[Q, V, R]()
	var zero R
	l.complete(zero, nil)
	return l
}
