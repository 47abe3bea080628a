package providers

import (
	"context"
	"log/slog"
	"time"

	"sportsbase/internal/catalog"
	"sportsbase/internal/domain/scoreboard"
	"sportsbase/internal/domain/teams"
	"sportsbase/internal/logging"
	"sportsbase/internal/metrics"
)

// instrumentedProvider records every upstream call and classifies failures as DataFetchError.
// It never retries.
type instrumentedProvider struct {
	inner    ScoresProvider
	name     string
	recorder *metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewInstrumentedProvider wraps inner with per-league metrics and failure logging.
func NewInstrumentedProvider(inner ScoresProvider, name string, recorder *metrics.Recorder, logger *slog.Logger) ScoresProvider {
	return &instrumentedProvider{
		inner:    inner,
		name:     name,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

func (p *instrumentedProvider) FetchTeams(ctx context.Context, league catalog.LeagueDefinition) ([]teams.Team, error) {
	if p.inner == nil {
		return nil, WrapFetchError(league.Name, metrics.ResourceTeams, ErrProviderUnavailable)
	}
	start := p.now()
	items, err := p.inner.FetchTeams(ctx, league)
	err = p.observe(ctx, league, metrics.ResourceTeams, start, err)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (p *instrumentedProvider) FetchScoreboard(ctx context.Context, league catalog.LeagueDefinition) (scoreboard.Scoreboard, error) {
	if p.inner == nil {
		return scoreboard.Scoreboard{}, WrapFetchError(league.Name, metrics.ResourceScoreboard, ErrProviderUnavailable)
	}
	start := p.now()
	board, err := p.inner.FetchScoreboard(ctx, league)
	err = p.observe(ctx, league, metrics.ResourceScoreboard, start, err)
	if err != nil {
		return scoreboard.Scoreboard{}, err
	}
	return board, nil
}

func (p *instrumentedProvider) observe(ctx context.Context, league catalog.LeagueDefinition, resource string, start time.Time, err error) error {
	duration := p.now().Sub(start)
	p.recorder.RecordFetch(league.ID, resource, duration, err)
	if err == nil {
		return nil
	}
	err = WrapFetchError(league.Name, resource, err)
	logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, league.ID, "upstream fetch failed",
		logging.FieldResource, resource,
		logging.FieldDurationMS, duration.Milliseconds(),
		logging.FieldError, err,
	)
	return err
}
