package server

import (
	"log/slog"
	"strings"

	"sportsbase/internal/config"
	"sportsbase/internal/logging"
	"sportsbase/internal/providers"
	"sportsbase/internal/providers/espn"
	"sportsbase/internal/providers/fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.ScoresProvider {
	switch strings.ToLower(cfg.Provider) {
	case "espn", "":
		return espn.NewClient(espn.Config{Timeout: cfg.HTTPTimeout})
	case "fixture":
		return fixture.New()
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", slog.String(logging.FieldProvider, cfg.Provider))
		return fixture.New()
	}
}
