package fixture

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sportsbase/internal/catalog"
	"sportsbase/internal/domain/scoreboard"
	"sportsbase/internal/domain/teams"
)

// Provider returns a static set of teams and games useful for local testing and bootstrapping.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// Name identifies the provider in logs and metrics.
func (p *Provider) Name() string {
	return "fixture"
}

var knownTeams = map[string][]teams.Team{
	"nba": {
		{ID: "2", Name: "Boston Celtics", ShortName: "Celtics", Location: "Boston", Abbreviation: "BOS"},
		{ID: "13", Name: "Los Angeles Lakers", ShortName: "Lakers", Location: "Los Angeles", Abbreviation: "LAL"},
		{ID: "9", Name: "Golden State Warriors", ShortName: "Warriors", Location: "Golden State", Abbreviation: "GS"},
		{ID: "14", Name: "Miami Heat", ShortName: "Heat", Location: "Miami", Abbreviation: "MIA"},
	},
	"nfl": {
		{ID: "12", Name: "Kansas City Chiefs", ShortName: "Chiefs", Location: "Kansas City", Abbreviation: "KC"},
		{ID: "25", Name: "San Francisco 49ers", ShortName: "49ers", Location: "San Francisco", Abbreviation: "SF"},
		{ID: "2", Name: "Buffalo Bills", ShortName: "Bills", Location: "Buffalo", Abbreviation: "BUF"},
		{ID: "21", Name: "Philadelphia Eagles", ShortName: "Eagles", Location: "Philadelphia", Abbreviation: "PHI"},
	},
}

// FetchTeams returns a deterministic set of teams for the league.
// Leagues without curated data get four generated clubs.
func (p *Provider) FetchTeams(ctx context.Context, league catalog.LeagueDefinition) ([]teams.Team, error) {
	_ = ctx
	if items, ok := knownTeams[league.ID]; ok {
		out := make([]teams.Team, len(items))
		copy(out, items)
		return out, nil
	}
	prefix := strings.ToUpper(league.ID)
	out := make([]teams.Team, 0, 4)
	for i := 1; i <= 4; i++ {
		out = append(out, teams.Team{
			ID:           fmt.Sprintf("%s-%d", league.ID, i),
			Name:         fmt.Sprintf("%s Club %d", prefix, i),
			ShortName:    fmt.Sprintf("Club %d", i),
			Abbreviation: fmt.Sprintf("%s%d", prefix, i),
		})
	}
	return out, nil
}

// FetchScoreboard returns one live, one final and one upcoming game pairing the league's teams.
func (p *Provider) FetchScoreboard(ctx context.Context, league catalog.LeagueDefinition) (scoreboard.Scoreboard, error) {
	items, _ := p.FetchTeams(ctx, league)
	now := p.now().UTC().Truncate(time.Hour)

	live := event(league.ID+"-1", items[0], items[1], now.Add(-time.Hour))
	live.Status.Type = scoreboard.StatusType{State: scoreboard.StateIn, ShortDetail: "3rd Qtr"}
	setScores(&live, "54", "50")

	final := event(league.ID+"-2", items[2], items[3], now.Add(-4*time.Hour))
	final.Status.Type = scoreboard.StatusType{State: scoreboard.StatePost, ShortDetail: "Final"}
	setScores(&final, "101", "97")
	final.Competitions[0].Competitors[0].Winner = true

	upcoming := event(league.ID+"-3", items[1], items[2], now.Add(3*time.Hour))
	upcoming.Status.Type = scoreboard.StatusType{State: scoreboard.StatePre, ShortDetail: "Scheduled"}
	upcoming.Competitions[0].Broadcasts = []scoreboard.Broadcast{{Media: &scoreboard.Media{ShortName: "ESPN"}}}

	return scoreboard.Scoreboard{Events: []scoreboard.Event{live, final, upcoming}}, nil
}

func event(id string, home, away teams.Team, start time.Time) scoreboard.Event {
	return scoreboard.Event{
		ID:   id,
		Date: start.Format(time.RFC3339),
		Competitions: []scoreboard.Competition{{
			Competitors: []scoreboard.Competitor{
				{HomeAway: "home", Team: &scoreboard.CompetitorTeam{ID: home.ID, DisplayName: home.Name, ShortDisplayName: home.ShortName}},
				{HomeAway: "away", Team: &scoreboard.CompetitorTeam{ID: away.ID, DisplayName: away.Name, ShortDisplayName: away.ShortName}},
			},
			Venue: &scoreboard.Venue{FullName: home.Location + " Arena"},
		}},
	}
}

func setScores(e *scoreboard.Event, home, away string) {
	e.Competitions[0].Competitors[0].Score = scoreboard.NewScore(home)
	e.Competitions[0].Competitors[1].Score = scoreboard.NewScore(away)
}
