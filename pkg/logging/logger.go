// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of imagevault.
//
// imagevault is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

// Package logging provides the structured logger threaded through the
// bundle build pipeline.
package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
)

// Format selects the slog handler used to render log records.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Logger wraps a *slog.Logger with the small set of convenience methods
// the pipeline stages use.
type Logger struct {
	logger *slog.Logger
	debug  bool
}

// NewLogger creates a new logger instance writing to w in the given format.
func NewLogger(w io.Writer, format Format, debug bool) *Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if format == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &Logger{
		logger: slog.New(handler),
		debug:  debug,
	}
}

// DefaultLogger returns a text logger writing to stderr with debug=false.
func DefaultLogger() *Logger {
	return NewLogger(os.Stderr, FormatText, false)
}

// With returns a Logger whose records always carry the given key/value
// attributes, used to scope a stage's logs to a level index or language.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{logger: l.logger.With(args...), debug: l.debug}
}

// Info logs an informational message with structured attributes.
func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Infof logs a formatted informational message.
func (l *Logger) Infof(format string, args ...any) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

// Debug logs a debug-level message with structured attributes.
func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Warn logs a warning with structured attributes.
func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs an error with structured attributes.
func (l *Logger) Error(msg string, err error, args ...any) {
	l.logger.Error(msg, append([]any{"error", err}, args...)...)
}

// FatalError logs a fatal error and exits the process.
func (l *Logger) FatalError(msg string, err error, args ...any) {
	l.logger.Error(msg, append([]any{"error", err}, args...)...)
	log.Fatal(err)
}
