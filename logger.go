package pxl

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so slog skips
// building attributes for disabled calls.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var silent = slog.New(nopHandler{})

// current holds the active logger.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger installs the logger used by pxl and by the surface backends.
// pxl is silent until SetLogger is called; nil makes it silent again.
// SetLogger may be called at any time from any goroutine.
//
// Levels:
//   - [slog.LevelDebug]: backend selection, each rendered frame, resizes
//   - [slog.LevelInfo]: canvas creation, devices and screens opened
//   - [slog.LevelWarn]: release failures, headless GPU hosts
//   - [slog.LevelError]: failed acquisition, presentation or resize
//
// Example:
//
//	pxl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the active logger. Surface packages log through it so a
// single SetLogger call configures the whole stack.
func Logger() *slog.Logger {
	return current.Load()
}
