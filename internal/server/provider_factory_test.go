package server

import (
	"context"
	"errors"
	"testing"

	"sportsbase/internal/config"
	"sportsbase/internal/domain/teams"
	"sportsbase/internal/metrics"
	"sportsbase/internal/providers"
	"sportsbase/internal/providers/fixture"
	"sportsbase/internal/testutil"
)

func TestProviderFactoryBuildsConfiguredProvider(t *testing.T) {
	cache := newProviderFactory(nil, nil).build(config.Config{Provider: "fixture"}, nil)
	if cache == nil {
		t.Fatalf("expected provider")
	}
	league := testutil.SampleLeague("nba", "NBA")
	got, err := cache.FetchTeams(context.Background(), league)
	if err != nil || len(got) == 0 {
		t.Fatalf("expected fixture teams, got %v %v", got, err)
	}
	if !cache.Cached("nba") {
		t.Fatalf("expected teams cached")
	}
}

func TestProviderFactoryWrapsErrorsAndRecords(t *testing.T) {
	rec := metrics.NewRecorder()
	base := testutil.ErrProvider{Err: errors.New("boom")}
	cache := newProviderFactory(nil, rec).build(config.Config{Provider: "espn"}, base)

	_, err := cache.FetchTeams(context.Background(), testutil.SampleLeague("nfl", "NFL"))
	fetchErr, ok := providers.AsDataFetchError(err)
	if !ok || fetchErr.League != "NFL" {
		t.Fatalf("expected data fetch error naming the league, got %v", err)
	}
	if rec.FetchErrors("nfl") != 1 {
		t.Fatalf("expected fetch error recorded")
	}
	if cache.Cached("nfl") {
		t.Fatalf("failed fetch must not be cached")
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName("ESPN", testutil.GoodProvider{Teams: []teams.Team{}}); got != "espn" {
		t.Fatalf("expected configured name lower-cased, got %s", got)
	}
	if got := normalizeProviderName("anything", fixture.New()); got != "fixture" {
		t.Fatalf("expected provider Name to win, got %s", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Fatalf("expected generic fallback, got %s", got)
	}
}
