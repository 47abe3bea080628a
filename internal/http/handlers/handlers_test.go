package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"sportsbase/internal/catalog"
	"sportsbase/internal/dashboard"
	"sportsbase/internal/domain/teams"
	"sportsbase/internal/preferences"
	"sportsbase/internal/session"
	"sportsbase/internal/storage"
	"sportsbase/internal/teststubs"
	"sportsbase/internal/testutil"
)

type fixture struct {
	router  chi.Router
	session *session.Session
	engine  *dashboard.Engine
}

func testCatalog() *catalog.Catalog {
	return testutil.SampleCatalog(
		testutil.SampleLeague("nba", "NBA"),
		testutil.SampleLeague("nfl", "NFL"),
	)
}

func newFixture(t *testing.T, blobs storage.BlobStore) fixture {
	t.Helper()
	if blobs == nil {
		blobs = storage.NewMemoryStore()
	}
	cat := testCatalog()
	provider := &teststubs.StubProvider{
		Teams: map[string][]teams.Team{
			"nba": {testutil.SampleTeam("1", "Alpha"), testutil.SampleTeam("2", "Beta")},
			"nfl": {testutil.SampleTeam("10", "Ten")},
		},
	}
	store := preferences.NewStore(blobs, cat, "", nil)
	engine := dashboard.New(provider, cat, nil, nil, dashboard.Config{Interval: time.Hour, Location: time.UTC})
	sess := session.New(cat, store, provider, engine, nil)
	t.Cleanup(sess.Close)

	h := NewHandler(sess, cat, nil, engine.Status)
	r := chi.NewRouter()
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Get("/leagues", h.Leagues)
	r.Get("/setup", h.Setup)
	r.Post("/setup/leagues", h.SubmitLeagues)
	r.Post("/setup/leagues/{leagueID}/toggle", h.ToggleLeague)
	r.Post("/setup/teams", h.SubmitTeams)
	r.Post("/setup/teams/{leagueID}/{teamID}/toggle", h.ToggleTeam)
	r.Post("/setup/back", h.Back)
	r.Get("/dashboard", h.Dashboard)
	r.Post("/dashboard/refresh", h.Refresh)
	r.Post("/preferences/edit", h.EditPreferences)
	return fixture{router: r, session: sess, engine: engine}
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	return testutil.Serve(h, http.MethodPost, path, strings.NewReader(body))
}

func TestHealth(t *testing.T) {
	f := newFixture(t, nil)
	rr := testutil.Serve(f.router, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	h := NewHandler(nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req.WithContext(ctx))

	testutil.AssertError(t, rr, http.StatusServiceUnavailable, "shutting down")
}

func TestHealthRejectsWrongMethod(t *testing.T) {
	h := NewHandler(nil, nil, nil, nil)
	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodPost, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
	if rr.Header().Get("Allow") != http.MethodGet {
		t.Fatalf("expected Allow header")
	}
}

func TestReadyReflectsStatus(t *testing.T) {
	h := NewHandler(nil, nil, nil, nil)
	rr := testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	h = NewHandler(nil, nil, nil, func() dashboard.Status {
		return dashboard.Status{ConsecutiveFailures: 3, LastError: "all leagues failed"}
	})
	rr = testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertError(t, rr, http.StatusServiceUnavailable, "all leagues failed")
}

func TestLeaguesListsCatalogInOrder(t *testing.T) {
	f := newFixture(t, nil)
	rr := testutil.Serve(f.router, http.MethodGet, "/leagues", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp leaguesResponse
	testutil.DecodeJSON(t, rr, &resp)
	if len(resp.Leagues) != 2 || resp.Leagues[0].ID != "nba" || resp.Leagues[1].ID != "nfl" {
		t.Fatalf("unexpected leagues %+v", resp.Leagues)
	}
}

func TestSetupFlowReachesDashboard(t *testing.T) {
	f := newFixture(t, nil)

	rr := post(t, f.router, "/setup/leagues", `{"leagueIds":["nba"]}`)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var view session.SetupView
	testutil.DecodeJSON(t, rr, &view)
	if view.Step != session.StepTeams || len(view.TeamGroups) != 1 {
		t.Fatalf("expected one team group, got %+v", view)
	}

	rr = post(t, f.router, "/setup/teams/nba/2/toggle", `{"checked":true}`)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = post(t, f.router, "/setup/teams", "")
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.DecodeJSON(t, rr, &view)
	if view.Step != session.StepDashboard {
		t.Fatalf("expected dashboard step, got %s", view.Step)
	}

	rr = testutil.Serve(f.router, http.MethodGet, "/dashboard", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var d dashboard.Dashboard
	testutil.DecodeJSON(t, rr, &d)
	if len(d.Sections) != 1 || d.Sections[0].LeagueID != "nba" {
		t.Fatalf("unexpected dashboard %+v", d)
	}

	rr = post(t, f.router, "/dashboard/refresh", "")
	testutil.AssertStatus(t, rr, http.StatusOK)
	var refreshed refreshResponse
	testutil.DecodeJSON(t, rr, &refreshed)
	if !refreshed.Refreshed {
		t.Fatalf("expected manual refresh to run")
	}

	rr = post(t, f.router, "/preferences/edit", "")
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.DecodeJSON(t, rr, &view)
	if view.Step != session.StepLeagues || !view.Leagues[0].Checked {
		t.Fatalf("expected league step with stored league checked, got %+v", view)
	}
	if f.engine.AutoRefreshing() {
		t.Fatalf("edit must stop auto refresh")
	}
}

func TestSubmitLeaguesValidationReturns422(t *testing.T) {
	f := newFixture(t, nil)
	rr := post(t, f.router, "/setup/leagues", `{"leagueIds":[]}`)
	testutil.AssertError(t, rr, http.StatusUnprocessableEntity, "Please choose between 1 and 5 leagues to continue.")
}

func TestSubmitLeaguesRejectsMalformedBody(t *testing.T) {
	f := newFixture(t, nil)
	rr := post(t, f.router, "/setup/leagues", `{"leagueIds":`)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestToggleRequiresChecked(t *testing.T) {
	f := newFixture(t, nil)
	rr := post(t, f.router, "/setup/leagues/nba/toggle", `{}`)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestToggleUnknownLeagueReturns404(t *testing.T) {
	f := newFixture(t, nil)
	rr := post(t, f.router, "/setup/leagues/cricket/toggle", `{"checked":true}`)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	rr = post(t, f.router, "/setup/leagues/nba/toggle", `{"checked":true}`)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var view session.SetupView
	testutil.DecodeJSON(t, rr, &view)
	if !view.Leagues[0].Checked {
		t.Fatalf("expected nba checked")
	}
}

func TestSubmitTeamsSaveFailureReturns500WithMessage(t *testing.T) {
	blobs := &teststubs.StubBlobStore{SetErr: errors.New("disk full")}
	f := newFixture(t, blobs)
	testutil.AssertStatus(t, post(t, f.router, "/setup/leagues", `{"leagueIds":["nba"]}`), http.StatusOK)

	rr := post(t, f.router, "/setup/teams", `{"selections":{"nba":["1"]}}`)
	testutil.AssertError(t, rr, http.StatusInternalServerError, session.MessageSaveFailed)
}

func TestBackReturnsLeagueStep(t *testing.T) {
	f := newFixture(t, nil)
	testutil.AssertStatus(t, post(t, f.router, "/setup/leagues", `{"leagueIds":["nfl"]}`), http.StatusOK)

	rr := post(t, f.router, "/setup/back", "")
	testutil.AssertStatus(t, rr, http.StatusOK)
	var view session.SetupView
	testutil.DecodeJSON(t, rr, &view)
	if view.Step != session.StepLeagues || !view.Leagues[1].Checked {
		t.Fatalf("expected league step keeping nfl checked, got %+v", view)
	}
}
