// Package logger provides a zerolog-backed implementation of
// gopull.Logger, so pipeline runs log through the same structured
// logger as the embedding application:
//
//	gopull.SetDefaultLogger(logger.New(logger.Config{Level: "debug"}))
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config controls the adapter's level, format and destination.
type Config struct {
	// Level is the minimum level to emit: debug, info, warn or error.
	// Defaults to info; an unparsable level also falls back to info.
	Level string

	// Format selects the encoding: "json" (default) or "console".
	Format string

	// Output is the destination. Defaults to os.Stderr.
	Output io.Writer

	// NoColor disables colors in console format.
	NoColor bool
}

func (c Config) applyDefaults() Config {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "json"
	}
	if c.Output == nil {
		c.Output = os.Stderr
	}
	return c
}

// Logger adapts a zerolog.Logger to the gopull.Logger interface.
// Arguments follow the slog convention of alternating keys and values.
type Logger struct {
	zl zerolog.Logger
}

// New builds a Logger from cfg.
func New(cfg Config) *Logger {
	cfg = cfg.applyDefaults()

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}

	out := cfg.Output
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: cfg.Output, NoColor: cfg.NoColor}
	}

	zl := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return &Logger{zl: zl}
}

// FromZerolog wraps an existing zerolog.Logger.
func FromZerolog(zl zerolog.Logger) *Logger {
	return &Logger{zl: zl}
}

// Debug logs a message at debug level.
func (l *Logger) Debug(msg string, args ...any) { emit(l.zl.Debug(), msg, args) }

// Info logs a message at info level.
func (l *Logger) Info(msg string, args ...any) { emit(l.zl.Info(), msg, args) }

// Warn logs a message at warning level.
func (l *Logger) Warn(msg string, args ...any) { emit(l.zl.Warn(), msg, args) }

// Error logs a message at error level.
func (l *Logger) Error(msg string, args ...any) { emit(l.zl.Error(), msg, args) }

func emit(e *zerolog.Event, msg string, args []any) {
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = "!BADKEY"
		}
		if err, ok := args[i+1].(error); ok && key == "error" {
			e = e.AnErr(key, err)
			continue
		}
		e = e.Interface(key, args[i+1])
	}
	e.Msg(msg)
}
