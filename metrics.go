package gopull

import (
	"errors"
	"time"
)

// RunMetrics holds the outcome of a single Run invocation.
type RunMetrics struct {
	RunID string
	Name  string

	Start    time.Time
	Duration time.Duration

	Error error
}

// Success returns a numeric indicator of success (1 for success, 0 otherwise).
func (m *RunMetrics) Success() int {
	if m.Error == nil {
		return 1
	}
	return 0
}

// Failure returns a numeric indicator of failure (1 for failure, 0 otherwise).
func (m *RunMetrics) Failure() int {
	if errors.Is(m.Error, ErrFailure) {
		return 1
	}
	return 0
}

// Cancel returns a numeric indicator of cancellation (1 for cancel, 0 otherwise).
func (m *RunMetrics) Cancel() int {
	if errors.Is(m.Error, ErrCancel) {
		return 1
	}
	return 0
}

// MetricsCollector defines a function that collects run metrics.
type MetricsCollector func(metrics *RunMetrics)

// WithMetricsCollector adds a metrics collector to the run.
// Can be used multiple times to add multiple collectors.
func WithMetricsCollector(collector MetricsCollector) RunOption {
	return func(cfg *runConfig) {
		cfg.metricsCollector = append(cfg.metricsCollector, collector)
	}
}
