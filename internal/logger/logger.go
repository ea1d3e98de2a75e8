// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// dashboard server and the dashctl client.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// LevelEnv names the environment variable that overrides the global level.
const LevelEnv = "LOG_LEVEL"

// NewLogger constructs a JSON *Logger writing to os.Stdout for the given role
// label (e.g. "server", "migrations").
//
// Every entry carries a "role" field, a timestamp and a "func" caller field
// holding the fully-qualified function name. The global level defaults to
// Debug and can be raised with LOG_LEVEL (e.g. "info", "warn").
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewCLILogger constructs a human-readable *Logger writing to os.Stderr so
// that command output on stdout stays machine-readable.
func NewCLILogger(role string) *Logger {
	return newLogger(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}, role)
}

func newLogger(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(levelFromEnv())
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

func levelFromEnv() zerolog.Level {
	raw := strings.TrimSpace(os.Getenv(LevelEnv))
	if raw == "" {
		return zerolog.DebugLevel
	}

	level, err := zerolog.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return zerolog.DebugLevel
	}

	return level
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithContext attaches l to ctx so that FromContext can retrieve it.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromRequest returns the logger attached to the request's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx by WithContext or by
// zerolog's own WithContext. If nothing is attached, zerolog's default
// context logger is returned, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
