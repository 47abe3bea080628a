package testutil

import (
	"context"

	"sportsbase/internal/catalog"
	"sportsbase/internal/domain/scoreboard"
	"sportsbase/internal/domain/teams"
	"sportsbase/internal/providers"
)

// GoodProvider returns the provided teams and scoreboard for every league.
type GoodProvider struct {
	Teams      []teams.Team
	Scoreboard scoreboard.Scoreboard
}

func (p GoodProvider) FetchTeams(ctx context.Context, league catalog.LeagueDefinition) ([]teams.Team, error) {
	return p.Teams, nil
}

func (p GoodProvider) FetchScoreboard(ctx context.Context, league catalog.LeagueDefinition) (scoreboard.Scoreboard, error) {
	return p.Scoreboard, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchTeams(ctx context.Context, league catalog.LeagueDefinition) ([]teams.Team, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchScoreboard(ctx context.Context, league catalog.LeagueDefinition) (scoreboard.Scoreboard, error) {
	return scoreboard.Scoreboard{}, p.Err
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchTeams(ctx context.Context, league catalog.LeagueDefinition) ([]teams.Team, error) {
	return nil, providers.ErrProviderUnavailable
}

func (UnavailableProvider) FetchScoreboard(ctx context.Context, league catalog.LeagueDefinition) (scoreboard.Scoreboard, error) {
	return scoreboard.Scoreboard{}, providers.ErrProviderUnavailable
}
