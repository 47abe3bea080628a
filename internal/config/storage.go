package config

// StorageConfig selects and configures the preference blob store.
type StorageConfig struct {
	Backend     string // file, memory, redis, postgres
	Path        string // directory for the file backend
	Prefix      string // key namespace for persisted preferences
	RedisURL    string
	PostgresDSN string
}

func loadStorage() StorageConfig {
	return StorageConfig{
		Backend:     envOrDefault(envStorageBackend, defaultStorageBackend),
		Path:        envOrDefault(envStoragePath, defaultStoragePath),
		Prefix:      envOrDefault(envStoragePrefix, defaultStoragePrefix),
		RedisURL:    envOrDefault(envRedisURL, defaultRedisURL),
		PostgresDSN: envOrDefault(envPostgresDSN, ""),
	}
}
