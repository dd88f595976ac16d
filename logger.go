package arrkit

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with arrkit-specific context.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithTypeID adds a type identifier field to the logger.
func (l *Logger) WithTypeID(typeID string) *Logger {
	return &Logger{
		Logger: l.Logger.With("type", typeID),
	}
}

// WithAlgorithm adds an algorithm identifier field to the logger.
func (l *Logger) WithAlgorithm(algorithmID string) *Logger {
	return &Logger{
		Logger: l.Logger.With("algorithm", algorithmID),
	}
}

// WithCount adds an element count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogSort logs a sort operation.
func (l *Logger) LogSort(typeID, algorithmID, orderID string, count, status int) {
	if status != 0 {
		l.Error("sort failed",
			"type", typeID,
			"algorithm", algorithmID,
			"order", orderID,
			"count", count,
			"status", status,
		)
	} else {
		l.Debug("sort completed",
			"type", typeID,
			"algorithm", algorithmID,
			"order", orderID,
			"count", count,
		)
	}
}

// LogSearch logs a search operation. A not-found result logs at Debug, not
// Error: it is a routine outcome, not a failure.
func (l *Logger) LogSearch(typeID, algorithmID, orderID string, count, result int) {
	if result < -1 {
		l.Error("search failed",
			"type", typeID,
			"algorithm", algorithmID,
			"order", orderID,
			"count", count,
			"status", result,
		)
	} else {
		l.Debug("search completed",
			"type", typeID,
			"algorithm", algorithmID,
			"order", orderID,
			"count", count,
			"index", result,
		)
	}
}

// LogShuffle logs a shuffle operation.
func (l *Logger) LogShuffle(typeID, algorithmID, modeID string, count, status int) {
	if status != 0 {
		l.Error("shuffle failed",
			"type", typeID,
			"algorithm", algorithmID,
			"mode", modeID,
			"count", count,
			"status", status,
		)
	} else {
		l.Debug("shuffle completed",
			"type", typeID,
			"algorithm", algorithmID,
			"mode", modeID,
			"count", count,
		)
	}
}

// LogBatch logs a batch sort run.
func (l *Logger) LogBatch(jobs, failed int) {
	if failed > 0 {
		l.Warn("batch sort completed with failures",
			"total", jobs,
			"failed", failed,
			"success", jobs-failed,
		)
	} else {
		l.Info("batch sort completed",
			"jobs", jobs,
		)
	}
}
