package espn

import "time"

const (
	providerName       = "espn"
	defaultHTTPTimeout = 10 * time.Second
	scoreboardLimit    = "900"
	errorBodyLimit     = 512
)
