// Package logging defines the structured-logging interface used across
// gophauth and its zerolog and slog backends.
package logging

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key-value pairs, e.g.:
//
//	log.Info(ctx, "starting server", "addr", addr)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger
}

const (
	BackendZerolog = "zerolog"
	BackendSlog    = "slog"

	FormatJSON    = "json"
	FormatConsole = "console"
)

// Options selects and tunes a Logger backend.
type Options struct {
	Backend string
	Format  string
	Level   string
	Output  io.Writer
}

// New builds a Logger for the configured backend.
func New(opts Options) (Logger, error) {
	switch strings.ToLower(opts.Backend) {
	case "", BackendZerolog:
		return NewZerologLogger(opts)
	case BackendSlog:
		return NewSlogLoggerFromOptions(opts)
	default:
		return nil, fmt.Errorf("unknown log backend %q", opts.Backend)
	}
}
