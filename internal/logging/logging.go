// Package logging provides structured logging for jsonscrub built on zerolog.
// Loggers travel through context.Context so components share one configured
// sink without package-level globals.
package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls logger construction.
type Config struct {
	// Level is a zerolog level name ("debug", "info", "warn", "error").
	// Unparseable values fall back to info.
	Level string
	// Format selects "console" (human-readable, stderr) or "json".
	Format string
	// File, when non-empty, appends log output to the given path in
	// addition to the console or json writer.
	File string
}

// NewLogger builds a zerolog.Logger from cfg. It never fails: a bad level
// degrades to info, and an unopenable log file degrades to console-only
// output with a warning on stderr.
func NewLogger(cfg Config) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var writers []io.Writer
	if cfg.Format == "json" {
		writers = append(writers, os.Stderr)
	} else {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	if cfg.File != "" {
		logFile, fileErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if fileErr != nil {
			stderrLogger := zerolog.New(os.Stderr)
			stderrLogger.Warn().Err(fileErr).
				Str("log_file", cfg.File).
				Msg("could not open log file, logging to console only")
		} else {
			writers = append(writers, logFile)
		}
	}

	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// ComponentLogger returns a child logger tagged with a component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx, or a disabled logger when
// none was attached. Components call this instead of taking a logger
// parameter on every function.
func FromContext(ctx context.Context) zerolog.Logger {
	return *zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx for retrieval via FromContext.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}
