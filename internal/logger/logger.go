// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used by the board client
// and the relay server.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ClientLogFileName is the file the client writes its log into, next to the
// executable. The terminal itself is owned by the TUI.
const ClientLogFileName = "sticky-board.log"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

func configureGlobals() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

func newWithWriter(role string, w io.Writer) *Logger {
	configureGlobals()

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewLogger constructs the relay's *Logger for the given role label.
//
// Entries carry a "role" field, a timestamp and a "func" caller field with the
// fully-qualified function name. Output is JSON on os.Stdout.
func NewLogger(role string) *Logger {
	return newWithWriter(role, os.Stdout)
}

// NewClientLogger constructs the client's *Logger. It appends JSON entries to
// [ClientLogFileName] next to the executable and falls back to io.Discard when
// the file cannot be opened, so log lines never corrupt the TUI.
func NewClientLogger(role string) *Logger {
	execPath, _ := os.Executable()
	return NewFileLogger(role, filepath.Join(filepath.Dir(execPath), ClientLogFileName))
}

// NewFileLogger is like [NewLogger] but appends to the file at path.
func NewFileLogger(role, path string) *Logger {
	var w io.Writer = io.Discard
	if logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
		w = logFile
	}

	return newWithWriter(role, w)
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child can be enriched without affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithStr returns a child logger carrying an extra string field.
func (l *Logger) WithStr(key, value string) *Logger {
	return &Logger{l.Logger.With().Str(key, value).Logger()}
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx. If none was attached,
// zerolog's default logger is returned, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
