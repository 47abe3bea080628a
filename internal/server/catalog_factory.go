package server

import (
	"log/slog"

	"sportsbase/internal/catalog"
	"sportsbase/internal/logging"
)

// buildCatalog loads the league catalog file when configured, else the built-in leagues.
func buildCatalog(path string, logger *slog.Logger) *catalog.Catalog {
	if path == "" {
		return catalog.Default()
	}
	cat, err := catalog.LoadFile(path)
	if err != nil {
		logging.Warn(logger, "catalog file unusable, using built-in leagues",
			slog.String("path", path),
			slog.Any(logging.FieldError, err),
		)
		return catalog.Default()
	}
	logging.Info(logger, "catalog loaded", slog.String("path", path), slog.Int(logging.FieldCount, len(cat.All())))
	return cat
}
