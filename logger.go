package vfind

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with vfind-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithRequest adds the request fields to the logger.
func (l *Logger) WithRequest(req Request) *Logger {
	return &Logger{
		Logger: l.Logger.With(
			"variant", req.Variant.String(),
			"start", req.Start,
			"end", req.End,
			"step", req.Step,
			"target", req.Target,
			"limit", req.Limit,
		),
	}
}

// LogSearch logs a finished search.
func (l *Logger) LogSearch(ctx context.Context, workers int, out *Outcome, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"workers", workers,
			"elapsed", elapsed,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "search completed",
		"workers", workers,
		"elapsed", elapsed,
		"count", out.Count,
		"found", out.Stats.Found,
		"early_stopped", out.Stats.EarlyStopped,
		"isa", out.Stats.ISA,
	)
}
