package providers

import (
	"context"
	"log/slog"

	"sportsbase/internal/logging"
)

// logWithProvider emits a log entry if logger is non-nil and always includes provider and league.
func logWithProvider(ctx context.Context, logger *slog.Logger, level slog.Level, provider, league string, msg string, args ...any) {
	logger = logging.FromContext(ctx, logger)
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldProvider, provider), slog.String(logging.FieldLeague, league))
	logger.Log(ctx, level, msg, args...)
}
