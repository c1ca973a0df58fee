package ocrset

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false so callers skip
// attribute evaluation.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(slog.New(discard{}))
}

// SetLogger installs the logger shared by ocrset and its sub-packages.
// Nothing is logged until SetLogger is called; nil restores silence.
//
// Levels:
//   - [slog.LevelDebug]: recipe loading, per-sample export progress
//   - [slog.LevelInfo]: dataset construction, export summaries, layouts
//   - [slog.LevelWarn]: font fallback, unknown anchors
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discard{})
	}
	current.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return current.Load()
}

// Component returns Logger tagged with a component attribute, so records
// from dataset, export and recipe can be told apart in one stream.
// The result is bound to the logger installed at call time.
func Component(name string) *slog.Logger {
	return Logger().With(slog.String("component", name))
}

// NewTextLogger returns a text logger writing to w at Info, or at Debug
// when verbose is set.
func NewTextLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
