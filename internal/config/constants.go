package config

import "time"

const (
	envPort            = "PORT"
	envRefreshInterval = "REFRESH_INTERVAL"
	envProvider        = "PROVIDER"
	envHTTPTimeout     = "HTTP_TIMEOUT"
	envTimezone        = "TIMEZONE"
	envCatalogFile     = "CATALOG_FILE"
	envCORSOrigins     = "CORS_ORIGINS"
	envAdminToken      = "ADMIN_TOKEN"
	envStorageBackend  = "STORAGE_BACKEND"
	envStoragePath     = "STORAGE_PATH"
	envStoragePrefix   = "STORAGE_PREFIX"
	envRedisURL        = "REDIS_URL"
	envPostgresDSN     = "POSTGRES_DSN"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envMetricsPath     = "METRICS_PATH"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// Scoreboards refresh once a minute; rosters are cached separately.
	defaultRefreshInterval = Duration(time.Minute)
	defaultProvider        = "espn"
	defaultHTTPTimeout     = 10 * Duration(time.Second)
	defaultCORSOrigin      = "*"
	defaultStorageBackend  = "file"
	defaultStoragePath     = "data/preferences"
	defaultStoragePrefix   = "sportsbase:"
	defaultRedisURL        = "redis://localhost:6379/0"
	defaultMetricsPort     = "9090"
	defaultMetricsPath     = "/metrics"
	defaultServiceName     = "sportsbase"
)
