package providers

import (
	"context"

	"sportsbase/internal/catalog"
	"sportsbase/internal/domain/scoreboard"
	"sportsbase/internal/domain/teams"
)

// TeamProvider fetches the normalized team list for a league.
type TeamProvider interface {
	FetchTeams(ctx context.Context, league catalog.LeagueDefinition) ([]teams.Team, error)
}

// ScoreboardProvider fetches the current scoreboard for a league.
// Scoreboards are never cached.
type ScoreboardProvider interface {
	FetchScoreboard(ctx context.Context, league catalog.LeagueDefinition) (scoreboard.Scoreboard, error)
}

// ScoresProvider combines both capabilities.
type ScoresProvider interface {
	TeamProvider
	ScoreboardProvider
}
