// Package cli implements the orbita command-line interface.
//
// The CLI is a diagnostic surface for the enumeration engine: it reads an
// action description from a TOML file, enumerates the orbit, and reports its
// size, components, and word graph. Commands are built with cobra and log
// through charmbracelet/log; loggers travel through context.Context.
//
// # Commands
//
//   - enumerate: run an action to completion (or a time budget) and print a
//     summary of orbit size, state, and strong components
//   - dot: enumerate and export the word graph as Graphviz DOT, optionally
//     rendered to SVG
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// ctxKey is the context key type for the CLI logger.
type ctxKey struct{}

// newLogger creates a logger writing to w at the given level, with
// "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// withLogger attaches l to ctx.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// loggerFromContext returns the logger attached by withLogger, or a default
// logger when none is present.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
