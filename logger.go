package tensorcanon

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with tensorcanon-specific context.
// Normalization itself is pure and silent; only the batch layer logs.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithSymbol adds a tensor symbol field to the logger.
func (l *Logger) WithSymbol(symbol string) *Logger {
	return &Logger{
		Logger: l.Logger.With("symbol", symbol),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogNormalize logs the outcome of one normalization.
func (l *Logger) LogNormalize(ctx context.Context, symbol string, sign int, zero bool, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "normalization failed",
			"symbol", symbol,
			"error", err,
		)
	case zero:
		l.DebugContext(ctx, "normalization vanished",
			"symbol", symbol,
		)
	default:
		l.DebugContext(ctx, "normalization completed",
			"symbol", symbol,
			"sign", sign,
		)
	}
}

// LogBatch logs a completed batch normalization.
func (l *Logger) LogBatch(ctx context.Context, total, vanished int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch normalization failed",
			"total", total,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "batch normalization completed",
		"total", total,
		"vanished", vanished,
	)
}
