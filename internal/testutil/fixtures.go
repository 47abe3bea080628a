package testutil

import (
	"sportsbase/internal/catalog"
	"sportsbase/internal/domain/scoreboard"
	"sportsbase/internal/domain/teams"
)

// SampleLeague returns a league definition with placeholder endpoints.
func SampleLeague(id, name string) catalog.LeagueDefinition {
	return catalog.LeagueDefinition{
		ID:            id,
		Name:          name,
		TeamsURL:      "http://example.com/" + id + "/teams",
		ScoreboardURL: "http://example.com/" + id + "/scoreboard",
	}
}

// SampleCatalog builds a catalog from the given leagues or panics; intended for tests.
func SampleCatalog(leagues ...catalog.LeagueDefinition) *catalog.Catalog {
	c, err := catalog.New(leagues)
	if err != nil {
		panic(err)
	}
	return c
}

// SampleTeam returns a minimal team fixture.
func SampleTeam(id, name string) teams.Team {
	return teams.Team{ID: id, Name: name, ShortName: name, Abbreviation: id}
}

// SampleCompetitor returns a competitor for teamID. An empty score leaves it absent.
func SampleCompetitor(teamID, name, score string) scoreboard.Competitor {
	c := scoreboard.Competitor{Team: &scoreboard.CompetitorTeam{ID: teamID, DisplayName: name}}
	if score != "" {
		c.Score = scoreboard.NewScore(score)
	}
	return c
}

// SampleEvent returns an event with a single competition between the competitors.
func SampleEvent(id, state, date string, competitors ...scoreboard.Competitor) scoreboard.Event {
	return scoreboard.Event{
		ID:           id,
		Date:         date,
		Status:       scoreboard.Status{Type: scoreboard.StatusType{State: state}},
		Competitions: []scoreboard.Competition{{Competitors: competitors}},
	}
}

// SampleScoreboard wraps events in a scoreboard.
func SampleScoreboard(events ...scoreboard.Event) scoreboard.Scoreboard {
	return scoreboard.Scoreboard{Events: events}
}
