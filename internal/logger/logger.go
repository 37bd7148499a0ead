// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors used throughout flyconf.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer.
package logger

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Output formats accepted by [New].
const (
	FormatJSON = "json"
	FormatText = "text"
)

var configureOnce sync.Once

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// configure sets the process-wide zerolog knobs once: the caller field
// records the fully-qualified function name instead of file:line.
func configure() {
	configureOnce.Do(func() {
		zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
			return runtime.FuncForPC(pc).Name()
		}
		zerolog.CallerFieldName = "func"
	})
}

// NewLogger constructs a *Logger for the given role label (e.g. "resolver",
// "cli") that writes JSON to os.Stdout at debug level.
//
// Every entry carries a "role" field, a "ts" timestamp and a "func" caller
// field.
func NewLogger(role string) *Logger {
	l, _ := New(os.Stdout, role, zerolog.DebugLevel.String(), FormatJSON)
	return l
}

// New constructs a *Logger writing to w.
//
// level is any name accepted by zerolog.ParseLevel ("debug", "warn", ...);
// an empty level means info. format is [FormatJSON] or [FormatText]; text
// output goes through zerolog.ConsoleWriter and is meant for terminals.
func New(w io.Writer, role, level, format string) (*Logger, error) {
	configure()

	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(format) {
	case "", FormatJSON:
	case FormatText:
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	default:
		return nil, fmt.Errorf("unsupported log format %q", format)
	}

	logger := zerolog.New(w).Level(lvl).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}, nil
}

// ParseLevel converts a textual level into a zerolog.Level. An empty string
// yields zerolog.InfoLevel.
func ParseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		return zerolog.InfoLevel, nil
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return lvl, nil
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver, tagged with the given component name.
func (l *Logger) GetChildLogger(component string) *Logger {
	return &Logger{l.With().Str("component", component).Logger()}
}
