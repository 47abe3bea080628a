package server

import (
	"fmt"
	"strings"

	"sportsbase/internal/providers"
)

// normalizeProviderName returns a lower-cased provider name, preferring the provider's own
// Name over the configured value. Used to keep naming consistent in metrics/logs.
func normalizeProviderName(raw string, provider providers.ScoresProvider) string {
	if named, ok := provider.(interface{ Name() string }); ok && named.Name() != "" {
		return strings.ToLower(named.Name())
	}
	if raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
