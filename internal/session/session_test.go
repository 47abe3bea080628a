package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"sportsbase/internal/catalog"
	"sportsbase/internal/dashboard"
	"sportsbase/internal/domain/teams"
	"sportsbase/internal/preferences"
	"sportsbase/internal/selection"
	"sportsbase/internal/storage"
	"sportsbase/internal/teststubs"
	"sportsbase/internal/testutil"
)

type fixture struct {
	session  *Session
	engine   *dashboard.Engine
	provider *teststubs.StubProvider
	store    *preferences.Store
	blobs    storage.BlobStore
}

func newCatalog() *catalog.Catalog {
	return testutil.SampleCatalog(
		testutil.SampleLeague("nba", "NBA"),
		testutil.SampleLeague("nfl", "NFL"),
		testutil.SampleLeague("mlb", "MLB"),
		testutil.SampleLeague("nhl", "NHL"),
		testutil.SampleLeague("mls", "MLS"),
		testutil.SampleLeague("wnba", "WNBA"),
	)
}

func newFixture(t *testing.T, blobs storage.BlobStore) fixture {
	t.Helper()
	if blobs == nil {
		blobs = storage.NewMemoryStore()
	}
	cat := newCatalog()
	provider := &teststubs.StubProvider{
		Teams: map[string][]teams.Team{
			"nba": {
				testutil.SampleTeam("3", "Zeta Club"),
				testutil.SampleTeam("1", "alpha Club"),
				testutil.SampleTeam("2", "Beta Club"),
			},
			"nfl": {testutil.SampleTeam("10", "Ten")},
		},
	}
	store := preferences.NewStore(blobs, cat, "", nil)
	engine := dashboard.New(provider, cat, nil, nil, dashboard.Config{Interval: time.Hour, Location: time.UTC})
	s := New(cat, store, provider, engine, nil)
	t.Cleanup(s.Close)
	return fixture{session: s, engine: engine, provider: provider, store: store, blobs: blobs}
}

func TestStartWithoutStoredPreferencesStaysOnLeagues(t *testing.T) {
	f := newFixture(t, nil)
	view := f.session.Start(context.Background())
	if view.Step != StepLeagues {
		t.Fatalf("expected league step, got %s", view.Step)
	}
	if selection.CountChecked(view.Leagues) != 0 || len(view.Leagues) != 6 {
		t.Fatalf("unexpected league options %+v", view.Leagues)
	}
	if f.engine.AutoRefreshing() {
		t.Fatalf("auto refresh must not start without preferences")
	}
}

func TestStartWithStoredPreferencesAutoLaunches(t *testing.T) {
	f := newFixture(t, nil)
	saved := preferences.Preferences{
		SelectedLeagueIDs:       []string{"nba"},
		SelectedTeamIDsByLeague: map[string][]string{"nba": {"1"}},
	}
	if err := f.store.Save(context.Background(), saved); err != nil {
		t.Fatalf("seed save failed: %v", err)
	}

	view := f.session.Start(context.Background())
	if view.Step != StepDashboard {
		t.Fatalf("expected dashboard step, got %s", view.Step)
	}
	if ids := selection.CheckedIDs(view.Leagues); len(ids) != 1 || ids[0] != "nba" {
		t.Fatalf("expected stored league pre-checked, got %v", ids)
	}
	d := f.session.Dashboard()
	if d.Indicator != dashboard.IndicatorOK || len(d.Sections) != 1 {
		t.Fatalf("expected refreshed dashboard, got %+v", d)
	}
	if !f.engine.AutoRefreshing() {
		t.Fatalf("expected auto refresh running")
	}
	f.session.Close()
	if f.engine.AutoRefreshing() {
		t.Fatalf("expected close to stop auto refresh")
	}
}

func TestToggleLeagueEnforcesLimit(t *testing.T) {
	f := newFixture(t, nil)
	for _, id := range []string{"nba", "nfl", "mlb", "nhl", "mls"} {
		if _, err := f.session.ToggleLeague(id, true); err != nil {
			t.Fatalf("unexpected toggle error %v", err)
		}
	}
	view, _ := f.session.ToggleLeague("wnba", true)
	if selection.CountChecked(view.Leagues) != 5 {
		t.Fatalf("expected count capped at 5, got %d", selection.CountChecked(view.Leagues))
	}
	if !view.Leagues[5].Disabled || view.Leagues[5].Checked {
		t.Fatalf("expected sixth league disabled and unchecked, got %+v", view.Leagues[5])
	}

	view, _ = f.session.ToggleLeague("nba", false)
	if view.Leagues[5].Disabled {
		t.Fatalf("expected options re-enabled after uncheck")
	}

	if _, err := f.session.ToggleLeague("xfl", true); !errors.Is(err, ErrUnknownLeague) {
		t.Fatalf("expected unknown league error, got %v", err)
	}
}

func TestSubmitLeaguesRequiresAtLeastOne(t *testing.T) {
	f := newFixture(t, nil)
	view, err := f.session.SubmitLeagues(context.Background(), []string{})
	if _, ok := selection.AsValidationError(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if view.Message != "Please choose between 1 and 5 leagues to continue." || !view.IsError {
		t.Fatalf("unexpected feedback %q", view.Message)
	}
	if view.Step != StepLeagues {
		t.Fatalf("expected to stay on league step")
	}
}

func TestSubmitLeaguesRejectsTooMany(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.session.SubmitLeagues(context.Background(), []string{"nba", "nfl", "mlb", "nhl", "mls", "wnba"})
	if _, ok := selection.AsValidationError(err); !ok {
		t.Fatalf("expected validation error for six leagues, got %v", err)
	}
}

func TestSubmitLeaguesLoadsSortedPrecheckedGroups(t *testing.T) {
	f := newFixture(t, nil)
	_ = f.store.Save(context.Background(), preferences.Preferences{
		SelectedLeagueIDs:       []string{"nba"},
		SelectedTeamIDsByLeague: map[string][]string{"nba": {"2"}},
	})
	f.session.EditPreferences(context.Background())

	f.provider.TeamErrs = map[string]error{"mlb": errors.New("down")}
	view, err := f.session.SubmitLeagues(context.Background(), []string{"mlb", "nba"})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if view.Step != StepTeams || view.Message != MessageTeamsLoaded || view.IsError {
		t.Fatalf("unexpected view %+v", view)
	}
	if len(view.TeamGroups) != 2 || view.TeamGroups[0].LeagueID != "nba" || view.TeamGroups[1].LeagueID != "mlb" {
		t.Fatalf("expected groups in catalog order, got %+v", view.TeamGroups)
	}

	nba := view.TeamGroups[0]
	labels := []string{nba.Options[0].Label, nba.Options[1].Label, nba.Options[2].Label}
	if labels[0] != "alpha Club" || labels[1] != "Beta Club" || labels[2] != "Zeta Club" {
		t.Fatalf("expected collated order, got %v", labels)
	}
	if ids := selection.CheckedIDs(nba.Options); len(ids) != 1 || ids[0] != "2" {
		t.Fatalf("expected stored team pre-checked, got %v", ids)
	}
	if view.TeamGroups[1].Error != MessageTeamLoadFailed || len(view.TeamGroups[1].Options) != 0 {
		t.Fatalf("expected inline load error, got %+v", view.TeamGroups[1])
	}
}

func TestSubmitTeamsReportsFirstViolationInOrder(t *testing.T) {
	f := newFixture(t, nil)
	if _, err := f.session.SubmitLeagues(context.Background(), []string{"nba", "nfl"}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	view, err := f.session.SubmitTeams(context.Background(), map[string][]string{"nba": {"1"}})
	if _, ok := selection.AsValidationError(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if view.Message != "Please select between 1 and 5 teams for NFL." {
		t.Fatalf("unexpected message %q", view.Message)
	}
	if got := f.store.Load(context.Background()); got.HasLeagues() {
		t.Fatalf("nothing should be saved on validation failure")
	}
}

func TestSubmitTeamsSavesAndEntersDashboard(t *testing.T) {
	f := newFixture(t, nil)
	_, _ = f.session.SubmitLeagues(context.Background(), []string{"nba"})
	_, _ = f.session.ToggleTeam("nba", "3", true)

	view, err := f.session.SubmitTeams(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if view.Step != StepDashboard || view.Message != "" {
		t.Fatalf("unexpected view %+v", view)
	}
	saved := f.store.Load(context.Background())
	if len(saved.SelectedTeamIDsByLeague["nba"]) != 1 || saved.SelectedTeamIDsByLeague["nba"][0] != "3" {
		t.Fatalf("unexpected saved preferences %+v", saved)
	}
	if !f.engine.AutoRefreshing() {
		t.Fatalf("expected auto refresh running")
	}
	if d := f.session.Dashboard(); len(d.Sections) != 1 || d.Sections[0].Teams[0].Team.ID != "3" {
		t.Fatalf("unexpected dashboard %+v", d)
	}
}

func TestSubmitTeamsSaveFailureIsFeedback(t *testing.T) {
	blobs := &teststubs.StubBlobStore{}
	f := newFixture(t, blobs)
	_, _ = f.session.SubmitLeagues(context.Background(), []string{"nfl"})
	blobs.SetErr = errors.New("read-only")

	view, err := f.session.SubmitTeams(context.Background(), map[string][]string{"nfl": {"10"}})
	if err == nil || view.Message != MessageSaveFailed || !view.IsError {
		t.Fatalf("expected save failure feedback, got %+v err %v", view, err)
	}
	if view.Step != StepTeams {
		t.Fatalf("expected to stay on team step")
	}
}

func TestToggleTeamUnknownIDs(t *testing.T) {
	f := newFixture(t, nil)
	_, _ = f.session.SubmitLeagues(context.Background(), []string{"nba"})
	if _, err := f.session.ToggleTeam("nfl", "10", true); !errors.Is(err, ErrUnknownLeague) {
		t.Fatalf("expected unknown league, got %v", err)
	}
	if _, err := f.session.ToggleTeam("nba", "99", true); !errors.Is(err, ErrUnknownTeam) {
		t.Fatalf("expected unknown team, got %v", err)
	}
}

func TestEditPreferencesStopsRefreshAndRehydrates(t *testing.T) {
	f := newFixture(t, nil)
	_, _ = f.session.SubmitLeagues(context.Background(), []string{"nba"})
	_, _ = f.session.SubmitTeams(context.Background(), map[string][]string{"nba": {"1"}})

	view := f.session.EditPreferences(context.Background())
	if f.engine.AutoRefreshing() {
		t.Fatalf("expected auto refresh stopped")
	}
	if view.Step != StepLeagues || view.Message != MessageEditing {
		t.Fatalf("unexpected view %+v", view)
	}
	if ids := selection.CheckedIDs(view.Leagues); len(ids) != 1 || ids[0] != "nba" {
		t.Fatalf("expected stored league pre-checked, got %v", ids)
	}
}

func TestBackToLeagues(t *testing.T) {
	f := newFixture(t, nil)
	_, _ = f.session.SubmitLeagues(context.Background(), []string{"nba"})
	view := f.session.BackToLeagues()
	if view.Step != StepLeagues || view.Message != MessageBack {
		t.Fatalf("unexpected view %+v", view)
	}
	if ids := selection.CheckedIDs(view.Leagues); len(ids) != 1 {
		t.Fatalf("expected league selection kept, got %v", ids)
	}
}

func TestManualRefreshRunsOnlyOnDashboard(t *testing.T) {
	f := newFixture(t, nil)
	if _, ran := f.session.Refresh(context.Background()); ran {
		t.Fatalf("expected no refresh before the dashboard is shown")
	}
	if got := f.provider.ScoreboardCalls.Load(); got != 0 {
		t.Fatalf("expected no scoreboard fetch on the league step, got %d", got)
	}

	_, _ = f.session.SubmitLeagues(context.Background(), []string{"nba"})
	_, _ = f.session.SubmitTeams(context.Background(), map[string][]string{"nba": {"1"}})
	before := f.provider.ScoreboardCalls.Load()
	if _, ran := f.session.Refresh(context.Background()); !ran {
		t.Fatalf("expected manual refresh on the dashboard")
	}
	if f.provider.ScoreboardCalls.Load() != before+1 {
		t.Fatalf("expected one scoreboard fetch for the manual refresh")
	}

	_ = f.session.EditPreferences(context.Background())
	before = f.provider.ScoreboardCalls.Load()
	d, ran := f.session.Refresh(context.Background())
	if ran {
		t.Fatalf("expected refresh ignored while editing preferences")
	}
	if f.provider.ScoreboardCalls.Load() != before {
		t.Fatalf("expected no scoreboard fetch while editing")
	}
	if len(d.Sections) != 1 {
		t.Fatalf("expected latest dashboard returned, got %+v", d)
	}
}
