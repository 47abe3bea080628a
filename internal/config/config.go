package config

import (
	"time"

	"sportsbase/internal/timeutil"
)

// Config holds runtime configuration for the dashboard service.
type Config struct {
	Port            string
	RefreshInterval Duration
	Provider        string
	HTTPTimeout     Duration
	Timezone        string
	CatalogFile     string
	CORSOrigins     []string
	AdminToken      string
	Storage         StorageConfig
	Metrics         MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		RefreshInterval: durationEnvOrDefault(envRefreshInterval, defaultRefreshInterval),
		Provider:        envOrDefault(envProvider, defaultProvider),
		HTTPTimeout:     durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
		Timezone:        envOrDefault(envTimezone, ""),
		CatalogFile:     envOrDefault(envCatalogFile, ""),
		CORSOrigins:     listEnvOrDefault(envCORSOrigins, []string{defaultCORSOrigin}),
		AdminToken:      envOrDefault(envAdminToken, ""),
		Storage:         loadStorage(),
		Metrics:         loadMetrics(),
	}
}

// Location resolves the configured timezone, falling back to the host's local zone.
func (c Config) Location() *time.Location {
	return timeutil.ResolveLocation(c.Timezone)
}
