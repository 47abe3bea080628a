package logging

import (
	"context"
	"log/slog"
)

// Debug logs a debug message when a logger is configured.
func Debug(logger *slog.Logger, msg string, args ...any) {
	emit(logger, slog.LevelDebug, msg, nil, args)
}

// Info logs an info message when a logger is configured.
func Info(logger *slog.Logger, msg string, args ...any) {
	emit(logger, slog.LevelInfo, msg, nil, args)
}

// Warn logs a warning when a logger is configured.
func Warn(logger *slog.Logger, msg string, args ...any) {
	emit(logger, slog.LevelWarn, msg, nil, args)
}

// Error logs an error when a logger is configured. A nil err is omitted.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	emit(logger, slog.LevelError, msg, err, args)
}

// League tags an entry with the league it concerns.
func League(id string) slog.Attr {
	return slog.String(FieldLeague, id)
}

func emit(logger *slog.Logger, level slog.Level, msg string, err error, args []any) {
	if logger == nil {
		return
	}
	if err != nil {
		args = append(args, slog.Any(FieldError, err))
	}
	logger.Log(context.Background(), level, msg, args...)
}
