// Package cli implements the valvenet command-line interface.
//
// The CLI is a thin wrapper over the pressure package: it reads valve
// descriptions from a file or stdin, runs the single-agent and two-agent
// searches, and prints the two resulting integers. Built with cobra;
// progress and diagnostics go to stderr via charmbracelet/log, enabled at
// debug level with --verbose (-v).
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at the given level, with
// "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with
// the elapsed duration, rounded to the nearest millisecond.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

func (p *progress) done(msg string, args ...any) {
	p.logger.Infof(msg+" (%s)", append(args, time.Since(p.start).Round(time.Millisecond))...)
}

// ctxKey is a distinct type for context keys to avoid collisions.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, falling back to
// log.Default so commands always have a valid logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}

	return log.Default()
}
