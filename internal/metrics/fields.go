package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrLeague   = "league"
	AttrResource = "resource"
	AttrResult   = "result"
)

// Resource names for upstream fetches.
const (
	ResourceTeams      = "teams"
	ResourceScoreboard = "scoreboard"
)
