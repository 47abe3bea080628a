package config

import "strings"

// MetricsConfig controls telemetry export settings. The Prometheus scrape
// endpoint is served at Path on Port.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	Path         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, true),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		Path:         metricsPath(envOrDefault(envMetricsPath, defaultMetricsPath)),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		ServiceName:  envOrDefault(envOtelService, defaultServiceName),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
}

func metricsPath(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultMetricsPath
	}
	if !strings.HasPrefix(raw, "/") {
		return "/" + raw
	}
	return raw
}
