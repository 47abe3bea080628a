package server

import "time"

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 15 * time.Second
	idleTimeout  = 60 * time.Second

	// storageConnectTimeout bounds the ping of a networked preference backend at startup.
	storageConnectTimeout = 5 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
