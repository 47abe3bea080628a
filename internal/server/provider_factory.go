package server

import (
	"log/slog"

	"sportsbase/internal/config"
	"sportsbase/internal/metrics"
	"sportsbase/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (instrumentation + team cache).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

// build wraps base, or the configured provider when base is nil. No retry layer:
// a failed league is reported on the dashboard and retried by the next cycle.
func (f providerFactory) build(cfg config.Config, base providers.ScoresProvider) *providers.TeamCache {
	if base == nil {
		base = selectProvider(cfg, f.logger)
	}
	name := normalizeProviderName(cfg.Provider, base)
	instrumented := providers.NewInstrumentedProvider(base, name, f.metrics, f.logger)
	return providers.NewTeamCache(instrumented, f.metrics, f.logger)
}
