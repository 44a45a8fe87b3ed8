// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framegraph

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so the per-pass
// Debug calls in Compile and Execute never build their attributes.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the fallback logger of graphs built without WithLogger.
// Graphs of different goroutines may log while another goroutine calls
// SetLogger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger sets the logger of every Graph created without WithLogger, and of
// halres.RunFrame. Frame graphs log nothing until it is called; nil silences
// them again.
//
// Graph messages are prefixed with "framegraph:" and carry "pass" and
// "resource" attributes; halres messages are prefixed with "halres:". Debug reports each culled pass, materialization and destroy;
// Warn reports a failed Resource.Create or pass callback, which Execute also
// returns. Info and Error are not used.
//
// Example:
//
//	framegraph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger set by SetLogger. halres logs through it.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
