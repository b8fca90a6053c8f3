package gopull

import "github.com/google/uuid"

// RunOption configures a single Run invocation.
type RunOption func(*runConfig)

type runConfig struct {
	name    string
	runID   string
	logger  Logger
	recover bool

	metricsCollector []MetricsCollector
}

func parseRunConfig(opts []RunOption) runConfig {
	c := runConfig{}
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = logger
	}
	if c.runID == "" {
		c.runID = uuid.NewString()
	}
	return c
}

// WithName attaches a name to the run. The name appears in log
// messages and metrics and has no other effect.
func WithName(name string) RunOption {
	return func(cfg *runConfig) {
		cfg.name = name
	}
}

// WithRunID overrides the generated run identifier. Useful for
// correlating a run with an externally assigned identifier.
func WithRunID(id string) RunOption {
	return func(cfg *runConfig) {
		cfg.runID = id
	}
}

// WithLogger overrides the default logger for the run.
func WithLogger(l Logger) RunOption {
	return func(cfg *runConfig) {
		cfg.logger = l
	}
}
