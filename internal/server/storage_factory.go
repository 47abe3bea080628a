package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"sportsbase/internal/config"
	"sportsbase/internal/logging"
	"sportsbase/internal/storage"
)

// openStorage selects the preference backend named by cfg.Backend.
func openStorage(ctx context.Context, cfg config.StorageConfig) (storage.BlobStore, error) {
	switch strings.ToLower(cfg.Backend) {
	case "file":
		return storage.NewFSStore(cfg.Path), nil
	case "memory", "":
		return storage.NewMemoryStore(), nil
	case "redis":
		ctx, cancel := context.WithTimeout(ctx, storageConnectTimeout)
		defer cancel()
		return storage.ConnectRedis(ctx, cfg.RedisURL)
	case "postgres":
		ctx, cancel := context.WithTimeout(ctx, storageConnectTimeout)
		defer cancel()
		return storage.ConnectPostgres(ctx, cfg.PostgresDSN)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// buildStorage opens the configured backend and falls back to memory when it is unavailable.
// Preferences then last for the process lifetime only.
func buildStorage(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) storage.BlobStore {
	store, err := openStorage(ctx, cfg)
	if err != nil {
		logging.Warn(logger, "preference storage unavailable, continuing in memory",
			slog.String("backend", cfg.Backend),
			slog.Any(logging.FieldError, err),
		)
		return storage.NewMemoryStore()
	}
	logging.Info(logger, "preference storage ready", slog.String("backend", cfg.Backend))
	return store
}
