package repatch

import (
	"context"
	"io"
	"log/slog"

	"github.com/go-logr/logr"
)

// NewLogger returns a logr.Logger writing text to w. Each increment
// of verbosity lowers the minimum level by one slog level step.
func NewLogger(w io.Writer, verbosity int) logr.Logger {
	return logr.FromSlogHandler(
		slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.Level(int(slog.LevelError) - 4*verbosity),
		}),
	)
}

func WithLogger(ctx context.Context, log logr.Logger) context.Context {
	return logr.NewContext(ctx, log)
}

// LoggerFrom returns the logr.Logger from ctx, or one that
// discards everything if there is none.
func LoggerFrom(ctx context.Context) logr.Logger {
	return logr.FromContextOrDiscard(ctx)
}
