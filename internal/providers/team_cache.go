package providers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"sportsbase/internal/catalog"
	"sportsbase/internal/domain/scoreboard"
	"sportsbase/internal/domain/teams"
	"sportsbase/internal/logging"
	"sportsbase/internal/metrics"
)

// sharedFetchTimeout bounds a de-duplicated team fetch once it no longer follows a caller's context.
const sharedFetchTimeout = 30 * time.Second

// TeamCache keeps team lists in memory per league for the life of the process.
// Concurrent misses for one league share a single upstream call, and failures are never cached.
type TeamCache struct {
	inner    ScoresProvider
	recorder *metrics.Recorder
	logger   *slog.Logger

	mu    sync.RWMutex
	teams map[string][]teams.Team
	group singleflight.Group
}

// NewTeamCache wraps inner with a per-league team cache. Scoreboards pass through.
func NewTeamCache(inner ScoresProvider, recorder *metrics.Recorder, logger *slog.Logger) *TeamCache {
	return &TeamCache{
		inner:    inner,
		recorder: recorder,
		logger:   logger,
		teams:    make(map[string][]teams.Team),
	}
}

func (c *TeamCache) FetchTeams(ctx context.Context, league catalog.LeagueDefinition) ([]teams.Team, error) {
	if cached, ok := c.lookup(league.ID); ok {
		c.recorder.RecordCacheLookup(league.ID, true)
		return cached, nil
	}
	c.recorder.RecordCacheLookup(league.ID, false)

	// The shared call outlives any one caller, so it runs detached from their cancellation.
	ch := c.group.DoChan(league.ID, func() (any, error) {
		// Another caller may have filled the cache between lookup and DoChan.
		if cached, ok := c.lookup(league.ID); ok {
			return cached, nil
		}
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedFetchTimeout)
		defer cancel()
		items, err := c.inner.FetchTeams(fetchCtx, league)
		if err != nil {
			return nil, err
		}
		c.store(league.ID, items)
		logging.Debug(c.logger, "team list cached", logging.League(league.ID), logging.FieldCount, len(items))
		return items, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return cloneTeams(res.Val.([]teams.Team)), nil
	}
}

func (c *TeamCache) FetchScoreboard(ctx context.Context, league catalog.LeagueDefinition) (scoreboard.Scoreboard, error) {
	return c.inner.FetchScoreboard(ctx, league)
}

// Invalidate drops the cached team list for one league.
func (c *TeamCache) Invalidate(leagueID string) {
	c.mu.Lock()
	delete(c.teams, leagueID)
	c.mu.Unlock()
	logging.Info(c.logger, "team cache invalidated", logging.League(leagueID))
}

// Reset drops every cached team list.
func (c *TeamCache) Reset() {
	c.mu.Lock()
	c.teams = make(map[string][]teams.Team)
	c.mu.Unlock()
	logging.Info(c.logger, "team cache reset")
}

// Cached reports whether leagueID currently has a cached team list.
func (c *TeamCache) Cached(leagueID string) bool {
	_, ok := c.lookup(leagueID)
	return ok
}

func (c *TeamCache) lookup(leagueID string) ([]teams.Team, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items, ok := c.teams[leagueID]
	if !ok {
		return nil, false
	}
	return cloneTeams(items), true
}

func (c *TeamCache) store(leagueID string, items []teams.Team) {
	c.mu.Lock()
	c.teams[leagueID] = cloneTeams(items)
	c.mu.Unlock()
}

func cloneTeams(items []teams.Team) []teams.Team {
	out := make([]teams.Team, len(items))
	copy(out, items)
	return out
}
