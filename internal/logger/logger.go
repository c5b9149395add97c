// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger wraps charm/log for leveled diagnostics on stderr.
package logger

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging.
type Logger struct {
	*log.Logger
}

// New creates a logger writing to w at the named level (debug, info, warn,
// error). An unknown level falls back to info.
func New(w io.Writer, level string) *Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           lvl,
	})
	return &Logger{Logger: l}
}

// Discard returns a logger that drops all output.
func Discard() *Logger {
	return New(io.Discard, "error")
}

// ConversionFailed logs a per-file conversion error.
func (l *Logger) ConversionFailed(file string, err error) {
	l.Error("conversion failed", "file", file, "err", err)
}

// SkippedPath logs an input path excluded from the work list.
func (l *Logger) SkippedPath(path, reason string) {
	l.Warn(reason, "path", path)
}
