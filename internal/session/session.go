// Package session holds one user's selection state and turns UI actions into
// preference, provider and refresh-engine calls.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"sportsbase/internal/catalog"
	"sportsbase/internal/dashboard"
	"sportsbase/internal/domain/teams"
	"sportsbase/internal/logging"
	"sportsbase/internal/preferences"
	"sportsbase/internal/providers"
	"sportsbase/internal/selection"
)

var (
	// ErrUnknownLeague is returned when a command names a league that is not offered.
	ErrUnknownLeague = errors.New("unknown league")
	// ErrUnknownTeam is returned when a command names a team that is not offered.
	ErrUnknownTeam = errors.New("unknown team")
)

// Engine is the refresh engine surface the session drives.
type Engine interface {
	SetPreferences(p preferences.Preferences)
	Refresh(ctx context.Context) (dashboard.Dashboard, bool)
	Latest() dashboard.Dashboard
	StartAutoRefresh(ctx context.Context)
	StopAutoRefresh()
}

// Session is the explicit state of the setup flow and dashboard.
type Session struct {
	catalog  *catalog.Catalog
	store    *preferences.Store
	provider providers.TeamProvider
	engine   Engine
	logger   *slog.Logger
	collator *collate.Collator

	// cmdMu serializes commands, mu guards the state below.
	cmdMu sync.Mutex
	mu    sync.RWMutex

	step     Step
	leagues  []selection.Option
	groups   []TeamGroup
	current  preferences.Preferences
	message  string
	hasError bool
}

// New builds a session positioned on the league step.
func New(cat *catalog.Catalog, store *preferences.Store, provider providers.TeamProvider, engine Engine, logger *slog.Logger) *Session {
	s := &Session{
		catalog:  cat,
		store:    store,
		provider: provider,
		engine:   engine,
		logger:   logger,
		collator: collate.New(language.English),
		step:     StepLeagues,
		current:  preferences.Empty(),
	}
	s.leagues = s.leagueOptions()
	return s
}

// Start hydrates stored preferences and, when leagues were stored, enters the dashboard.
func (s *Session) Start(ctx context.Context) SetupView {
	s.cmdMu.Lock()
	defer s.cmdMu.Unlock()
	if s.hydrate(ctx) {
		s.enterDashboard(ctx)
	}
	return s.SetupView()
}

// SetupView returns a snapshot of the setup screens.
func (s *Session) SetupView() SetupView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SetupView{
		Step:       s.step,
		Leagues:    cloneOptions(s.leagues),
		TeamGroups: cloneGroups(s.groups),
		Message:    s.message,
		IsError:    s.hasError,
	}
}

// Step returns the current screen.
func (s *Session) Step() Step {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.step
}

// Preferences returns the current selection.
func (s *Session) Preferences() preferences.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// ToggleLeague applies a league checkbox change with limit enforcement.
func (s *Session) ToggleLeague(id string, checked bool) (SetupView, error) {
	s.cmdMu.Lock()
	defer s.cmdMu.Unlock()

	s.mu.Lock()
	found := selection.Toggle(selection.LeagueScope(), s.leagues, id, checked)
	s.mu.Unlock()
	if !found {
		return s.SetupView(), fmt.Errorf("%w: %s", ErrUnknownLeague, id)
	}
	return s.SetupView(), nil
}

// SubmitLeagues validates the league selection and loads a team picker per league.
// A nil ids uses the currently checked options.
func (s *Session) SubmitLeagues(ctx context.Context, ids []string) (SetupView, error) {
	s.cmdMu.Lock()
	defer s.cmdMu.Unlock()

	s.mu.Lock()
	if ids != nil {
		applyChecked(s.leagues, ids)
	}
	selection.Enforce(selection.LeagueScope(), s.leagues)
	chosen := selection.CheckedIDs(s.leagues)
	if err := selection.Validate(selection.LeagueScope(), chosen); err != nil {
		s.setFeedbackLocked(err.Error(), true)
		s.mu.Unlock()
		return s.SetupView(), err
	}
	s.current.SelectedLeagueIDs = chosen
	stored := s.current.Clone()
	s.mu.Unlock()

	groups := s.loadTeamGroups(ctx, chosen, stored)

	s.mu.Lock()
	s.groups = groups
	s.step = StepTeams
	s.setFeedbackLocked(MessageTeamsLoaded, false)
	s.mu.Unlock()
	return s.SetupView(), nil
}

// ToggleTeam applies a team checkbox change within one league.
func (s *Session) ToggleTeam(leagueID, teamID string, checked bool) (SetupView, error) {
	s.cmdMu.Lock()
	defer s.cmdMu.Unlock()

	s.mu.Lock()
	idx := s.groupIndexLocked(leagueID)
	if idx < 0 {
		s.mu.Unlock()
		return s.SetupView(), fmt.Errorf("%w: %s", ErrUnknownLeague, leagueID)
	}
	group := &s.groups[idx]
	found := selection.Toggle(selection.TeamScope(group.LeagueName), group.Options, teamID, checked)
	s.mu.Unlock()
	if !found {
		return s.SetupView(), fmt.Errorf("%w: %s", ErrUnknownTeam, teamID)
	}
	return s.SetupView(), nil
}

// SubmitTeams validates every selected league in order, saves and enters the dashboard.
// A nil selections map uses the currently checked options.
func (s *Session) SubmitTeams(ctx context.Context, selections map[string][]string) (SetupView, error) {
	s.cmdMu.Lock()
	defer s.cmdMu.Unlock()

	s.mu.Lock()
	prefs := preferences.Empty()
	prefs.SelectedLeagueIDs = append(prefs.SelectedLeagueIDs, s.current.SelectedLeagueIDs...)
	for _, leagueID := range prefs.SelectedLeagueIDs {
		name := s.catalog.Name(leagueID)
		var chosen []string
		if idx := s.groupIndexLocked(leagueID); idx >= 0 {
			group := &s.groups[idx]
			if selections != nil {
				applyChecked(group.Options, selections[leagueID])
			}
			selection.Enforce(selection.TeamScope(name), group.Options)
			chosen = selection.CheckedIDs(group.Options)
		}
		if err := selection.Validate(selection.TeamScope(name), chosen); err != nil {
			s.setFeedbackLocked(err.Error(), true)
			s.mu.Unlock()
			return s.SetupView(), err
		}
		prefs.SelectedTeamIDsByLeague[leagueID] = chosen
	}
	s.mu.Unlock()

	if err := s.store.Save(ctx, prefs); err != nil {
		logging.Error(logging.FromContext(ctx, s.logger), "saving preferences failed", err)
		s.setFeedback(MessageSaveFailed, true)
		return s.SetupView(), err
	}

	s.mu.Lock()
	s.current = prefs
	s.mu.Unlock()
	s.engine.SetPreferences(prefs)
	s.enterDashboard(ctx)
	return s.SetupView(), nil
}

// EnterDashboard stops any running loop, refreshes once and restarts auto refresh.
func (s *Session) EnterDashboard(ctx context.Context) dashboard.Dashboard {
	s.cmdMu.Lock()
	defer s.cmdMu.Unlock()
	return s.enterDashboard(ctx)
}

// Refresh runs a manual refresh. Off the dashboard step it returns the latest
// dashboard without fetching. Overlapping triggers are dropped by the engine.
func (s *Session) Refresh(ctx context.Context) (dashboard.Dashboard, bool) {
	s.cmdMu.Lock()
	defer s.cmdMu.Unlock()
	if s.Step() != StepDashboard {
		return s.engine.Latest(), false
	}
	return s.engine.Refresh(ctx)
}

// Dashboard returns the latest dashboard.
func (s *Session) Dashboard() dashboard.Dashboard {
	return s.engine.Latest()
}

// EditPreferences stops auto refresh and returns to the league step with the
// stored selection pre-checked.
func (s *Session) EditPreferences(ctx context.Context) SetupView {
	s.cmdMu.Lock()
	defer s.cmdMu.Unlock()

	s.engine.StopAutoRefresh()
	s.hydrate(ctx)
	s.mu.Lock()
	s.step = StepLeagues
	s.setFeedbackLocked(MessageEditing, false)
	s.mu.Unlock()
	return s.SetupView()
}

// BackToLeagues leaves the team step without discarding checked leagues.
func (s *Session) BackToLeagues() SetupView {
	s.cmdMu.Lock()
	defer s.cmdMu.Unlock()

	s.mu.Lock()
	s.step = StepLeagues
	s.setFeedbackLocked(MessageBack, false)
	s.mu.Unlock()
	return s.SetupView()
}

// Close stops auto refresh.
func (s *Session) Close() {
	s.engine.StopAutoRefresh()
}

func (s *Session) enterDashboard(ctx context.Context) dashboard.Dashboard {
	s.engine.StopAutoRefresh()
	s.mu.Lock()
	s.step = StepDashboard
	s.setFeedbackLocked("", false)
	s.mu.Unlock()

	d, _ := s.engine.Refresh(ctx)
	s.engine.StartAutoRefresh(ctx)
	return d
}

// hydrate resets the league options from storage. It reports whether any league was stored.
func (s *Session) hydrate(ctx context.Context) bool {
	prefs := s.store.Load(ctx)

	s.mu.Lock()
	s.leagues = s.leagueOptions()
	s.groups = nil
	if prefs.HasLeagues() {
		applyChecked(s.leagues, prefs.SelectedLeagueIDs)
		selection.Enforce(selection.LeagueScope(), s.leagues)
	}
	s.current = prefs
	s.mu.Unlock()

	s.engine.SetPreferences(prefs)
	logging.Info(logging.FromContext(ctx, s.logger), "preferences hydrated", logging.FieldCount, len(prefs.SelectedLeagueIDs))
	return prefs.HasLeagues()
}

type teamResult struct {
	items []teams.Team
	err   error
}

// loadTeamGroups fetches every league's teams concurrently. A failed league
// gets an inline error instead of failing the whole step.
func (s *Session) loadTeamGroups(ctx context.Context, leagueIDs []string, stored preferences.Preferences) []TeamGroup {
	results := make([]teamResult, len(leagueIDs))
	var g errgroup.Group
	for i, id := range leagueIDs {
		i := i
		league, ok := s.catalog.ByID(id)
		if !ok {
			results[i] = teamResult{err: fmt.Errorf("%w: %s", ErrUnknownLeague, id)}
			continue
		}
		g.Go(func() error {
			items, err := s.provider.FetchTeams(ctx, league)
			results[i] = teamResult{items: items, err: err}
			return nil
		})
	}
	_ = g.Wait()

	groups := make([]TeamGroup, 0, len(leagueIDs))
	for i, id := range leagueIDs {
		name := s.catalog.Name(id)
		group := TeamGroup{LeagueID: id, LeagueName: name, Options: []selection.Option{}}
		if err := results[i].err; err != nil {
			logging.Warn(logging.FromContext(ctx, s.logger), "team list unavailable", logging.League(id), logging.FieldError, err)
			group.Error = MessageTeamLoadFailed
			groups = append(groups, group)
			continue
		}
		items := results[i].items
		sort.SliceStable(items, func(a, b int) bool {
			return s.collator.CompareString(items[a].Name, items[b].Name) < 0
		})
		for _, t := range items {
			group.Options = append(group.Options, selection.Option{ID: t.ID, Label: t.Name, Subtitle: t.Subtitle()})
		}
		applyChecked(group.Options, stored.SelectedTeamIDsByLeague[id])
		selection.Enforce(selection.TeamScope(name), group.Options)
		groups = append(groups, group)
	}
	return groups
}

func (s *Session) leagueOptions() []selection.Option {
	all := s.catalog.All()
	out := make([]selection.Option, 0, len(all))
	for _, l := range all {
		out = append(out, selection.Option{ID: l.ID, Label: l.Name, Subtitle: l.Description})
	}
	return out
}

func (s *Session) groupIndexLocked(leagueID string) int {
	for i := range s.groups {
		if s.groups[i].LeagueID == leagueID {
			return i
		}
	}
	return -1
}

func (s *Session) setFeedback(msg string, isError bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setFeedbackLocked(msg, isError)
}

func (s *Session) setFeedbackLocked(msg string, isError bool) {
	s.message = msg
	s.hasError = isError
}

// applyChecked checks exactly the options whose id is in ids. Unknown ids are ignored.
func applyChecked(options []selection.Option, ids []string) {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	for i := range options {
		_, ok := want[options[i].ID]
		options[i].Checked = ok
	}
}
