// Package logger provides structured logging infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger for structured logging
type Logger struct {
	*slog.Logger
}

// New creates a new logger based on environment. Logs go to stderr so
// stdout stays reserved for the lookup report.
func New(env string) *Logger {
	return NewWithWriter(env, os.Stderr)
}

// NewWithWriter creates a logger writing to the given destination.
func NewWithWriter(env string, w io.Writer) *Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}

	if strings.EqualFold(env, "development") {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// StageError logs a pipeline stage failure. Phone numbers are never
// attached as attributes: only stage names, error kinds and artifact
// paths are logged.
func (l *Logger) StageError(stage string, err error) {
	l.Error("stage_error",
		slog.String("stage", stage),
		slog.String("error", err.Error()),
	)
}

// ArtifactWritten logs a generated output artifact.
func (l *Logger) ArtifactWritten(kind, path string) {
	l.Info("artifact_written",
		slog.String("kind", kind),
		slog.String("path", path),
	)
}
