// SPDX-License-Identifier: Apache-2.0

// Package logging builds the diagnostics logger handed to the parser,
// planner and commands.
package logging

import (
	"context"
	"io"
	"log/slog"
)

// LevelCritical sits one step above slog.LevelError.
const LevelCritical = slog.LevelError + 4

// LevelFromVerbosity shifts the default warn level one step per flag:
// -vv debug, -v info, none warn, -q error, -qq critical, -qqq silent.
func LevelFromVerbosity(verbose, quiet int) slog.Level {
	return slog.LevelWarn + slog.Level(4*(quiet-verbose))
}

// New creates a text logger writing records at or above level to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl >= LevelCritical {
					a.Value = slog.StringValue("CRITICAL")
				}
			}
			return a
		},
	}))
}

// NewDiscard creates a logger that drops everything.
func NewDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(100)}))
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying logger.
func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or a discarding logger.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
			return logger
		}
	}
	return NewDiscard()
}
