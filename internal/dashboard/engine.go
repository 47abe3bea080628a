// Package dashboard runs the per-league refresh cycle and the auto-refresh loop.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"sportsbase/internal/catalog"
	"sportsbase/internal/domain/scoreboard"
	"sportsbase/internal/domain/teams"
	"sportsbase/internal/logging"
	"sportsbase/internal/metrics"
	"sportsbase/internal/preferences"
	"sportsbase/internal/providers"
	"sportsbase/internal/timeutil"
	"sportsbase/internal/views"
)

const defaultInterval = 60 * time.Second

// Config tunes the engine.
type Config struct {
	Interval time.Duration
	Location *time.Location
}

// Engine fetches and builds every selected league concurrently. Triggers that
// arrive while a cycle is running are dropped, not queued.
type Engine struct {
	provider providers.ScoresProvider
	catalog  *catalog.Catalog
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	loc      *time.Location
	now      func() time.Time

	refreshing atomic.Bool

	mu     sync.RWMutex
	prefs  preferences.Preferences
	latest Dashboard

	loopMu   sync.Mutex
	cancel   context.CancelFunc
	loopDone chan struct{}

	statusMu sync.RWMutex
	status   Status
}

// New constructs an Engine with sane defaults.
func New(provider providers.ScoresProvider, cat *catalog.Catalog, logger *slog.Logger, recorder *metrics.Recorder, cfg Config) *Engine {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &Engine{
		provider: provider,
		catalog:  cat,
		logger:   logger,
		metrics:  recorder,
		interval: cfg.Interval,
		loc:      cfg.Location,
		now:      time.Now,
		prefs:    preferences.Empty(),
		latest:   Dashboard{Indicator: IndicatorIdle, Sections: []views.LeagueSection{}},
	}
}

// SetPreferences replaces the selection used by later cycles.
func (e *Engine) SetPreferences(p preferences.Preferences) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.prefs = p.Clone()
}

// Preferences returns a copy of the current selection.
func (e *Engine) Preferences() preferences.Preferences {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.prefs.Clone()
}

// Latest returns the most recent dashboard, marked refreshing while a cycle runs.
func (e *Engine) Latest() Dashboard {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.latest.clone()
}

// Refreshing reports whether a cycle is in flight.
func (e *Engine) Refreshing() bool {
	return e.refreshing.Load()
}

// Refresh runs one cycle and returns the resulting dashboard. ran is false when
// the trigger was dropped because a cycle was already running, when there is
// nothing selected, or when ctx ended before the cycle settled.
func (e *Engine) Refresh(ctx context.Context) (Dashboard, bool) {
	prefs := e.Preferences()
	if !prefs.HasLeagues() {
		e.publish(Dashboard{
			Indicator: IndicatorIdle,
			Advisory:  NoLeaguesAdvisory,
			Sections:  []views.LeagueSection{},
		})
		return e.Latest(), false
	}

	if !e.refreshing.CompareAndSwap(false, true) {
		e.metrics.RecordRefreshSkipped()
		logging.Info(logging.FromContext(ctx, e.logger), "refresh skipped; cycle already running")
		return e.Latest(), false
	}
	defer e.refreshing.Store(false)

	previous := e.Latest()
	e.markRefreshing()

	start := e.now()
	e.recordAttempt(start)
	result, err := e.cycle(ctx, prefs)
	duration := e.now().Sub(start)

	if ctx.Err() != nil {
		// Canceled cycles are abandoned so a stop never publishes a spurious failure.
		e.publish(previous)
		logging.Info(logging.FromContext(ctx, e.logger), "refresh canceled", logging.FieldDurationMS, duration.Milliseconds())
		return previous, false
	}

	if err != nil {
		result.UpdatedAt = previous.UpdatedAt
		e.recordFailure(err)
		logging.Error(logging.FromContext(ctx, e.logger), "refresh failed", err,
			logging.FieldFailed, len(result.FailedLeagues),
			logging.FieldDurationMS, duration.Milliseconds(),
		)
	} else {
		result.UpdatedAt = start
		result.StatusLabel = timeutil.UpdatedLabel(start, e.loc)
		e.recordSuccess(start)
		logging.Info(logging.FromContext(ctx, e.logger), "dashboard refreshed",
			logging.FieldCount, len(result.Sections),
			logging.FieldFailed, len(result.FailedLeagues),
			logging.FieldDurationMS, duration.Milliseconds(),
		)
	}
	e.metrics.RecordRefreshCycle(duration, len(result.FailedLeagues), err)
	e.publish(result)
	return result.clone(), true
}

type leagueResult struct {
	section views.LeagueSection
	name    string
	err     error
}

// cycle fans out one goroutine per league and waits for all of them.
// A failing league never cancels the others.
func (e *Engine) cycle(ctx context.Context, prefs preferences.Preferences) (Dashboard, error) {
	results := make([]leagueResult, len(prefs.SelectedLeagueIDs))
	var wg sync.WaitGroup
	for i, id := range prefs.SelectedLeagueIDs {
		league, ok := e.catalog.ByID(id)
		if !ok {
			results[i] = leagueResult{name: e.catalog.Name(id), err: fmt.Errorf("unknown league %q", id)}
			continue
		}
		wg.Add(1)
		go func(i int, league catalog.LeagueDefinition, tracked []string) {
			defer wg.Done()
			section, err := e.buildLeague(ctx, league, tracked)
			results[i] = leagueResult{section: section, name: league.Name, err: err}
		}(i, league, prefs.TeamsFor(id))
	}
	wg.Wait()

	out := Dashboard{Indicator: IndicatorOK, Sections: []views.LeagueSection{}}
	var errs []error
	for _, r := range results {
		if r.err != nil {
			out.FailedLeagues = append(out.FailedLeagues, r.name)
			errs = append(errs, r.err)
			continue
		}
		out.Sections = append(out.Sections, r.section)
	}

	switch {
	case len(out.FailedLeagues) > 0:
		out.Advisory = FailedAdvisory(out.FailedLeagues)
	case !hasTeamViews(out.Sections):
		out.Advisory = NoTrackedGamesAdvice
	}

	if len(errs) == len(results) {
		out.Indicator = IndicatorFailed
		out.StatusLabel = FailedLabel
		return out, errors.Join(errs...)
	}
	return out, nil
}

// buildLeague fetches teams and scoreboard concurrently, then builds the section.
func (e *Engine) buildLeague(ctx context.Context, league catalog.LeagueDefinition, tracked []string) (views.LeagueSection, error) {
	var (
		teamList []teams.Team
		board    scoreboard.Scoreboard
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		teamList, err = e.provider.FetchTeams(gctx, league)
		return err
	})
	g.Go(func() error {
		var err error
		board, err = e.provider.FetchScoreboard(gctx, league)
		return err
	})
	if err := g.Wait(); err != nil {
		logging.Warn(logging.FromContext(ctx, e.logger), "league refresh failed",
			logging.League(league.ID), logging.FieldError, err)
		return views.LeagueSection{}, err
	}
	return views.BuildSection(league, teamList, board, tracked, e.loc), nil
}

func (e *Engine) markRefreshing() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.latest.Indicator = IndicatorRefreshing
	e.latest.StatusLabel = RefreshingLabel
	e.latest.Advisory = ""
}

func (e *Engine) publish(d Dashboard) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.latest = d.clone()
}
