// Package views turns raw league payloads into display-ready view models.
package views

import (
	"fmt"
	"strings"
	"time"

	"sportsbase/internal/catalog"
	"sportsbase/internal/domain/scoreboard"
	"sportsbase/internal/domain/teams"
	"sportsbase/internal/timeutil"
)

// BuildSection builds the section for one league. Tracked ids keep their order;
// ids missing from the team list are skipped.
func BuildSection(league catalog.LeagueDefinition, teamList []teams.Team, board scoreboard.Scoreboard, trackedIDs []string, loc *time.Location) LeagueSection {
	index := teams.Index(teamList)
	section := LeagueSection{
		LeagueID:   league.ID,
		LeagueName: league.Name,
		Summary:    TrackedSummary(len(trackedIDs)),
		Teams:      make([]TeamView, 0, len(trackedIDs)),
	}
	for _, id := range trackedIDs {
		team, ok := index[id]
		if !ok {
			continue
		}
		section.Teams = append(section.Teams, BuildTeam(team, board.Events, loc))
	}
	return section
}

// BuildTeam collects the events where team is a competitor of the first competition.
func BuildTeam(team teams.Team, events []scoreboard.Event, loc *time.Location) TeamView {
	view := TeamView{
		Team:     team,
		Subtitle: team.Subtitle(),
		Events:   []EventView{},
	}
	if team.LogoURL != "" {
		view.LogoAlt = team.Name + " logo"
	}
	for _, e := range events {
		if e.InvolvesTeam(team.ID) {
			view.Events = append(view.Events, BuildEvent(e, team.ID, loc))
		}
	}
	if len(view.Events) == 0 {
		view.Placeholder = NoGamesText
	}
	return view
}

// BuildEvent reduces an event to the card shown under teamID.
func BuildEvent(e scoreboard.Event, teamID string, loc *time.Location) EventView {
	state := e.State()
	view := EventView{
		ID:         e.ID,
		State:      state,
		StateClass: StateClass(state),
		StateLabel: DefaultStateLabel,
		TimeLabel:  timeLabel(e, state, loc),
		Primary:    ScoreRow{Label: MissingName, Score: MissingScore},
		Opponent:   ScoreRow{Label: MissingName, Score: MissingScore},
	}
	if label, ok := e.Status.Type.Label(); ok {
		view.StateLabel = label
	}

	comp, ok := e.Competition()
	if !ok {
		return view
	}
	if c, ok := comp.Competitor(teamID); ok {
		view.Primary = scoreRow(c)
	}
	if c, ok := comp.Opponent(teamID); ok {
		view.Opponent = scoreRow(c)
	}
	view.DetailLine = detailLine(e, comp)
	return view
}

// StateClass maps an event state to its styling class.
func StateClass(state string) string {
	switch state {
	case scoreboard.StateIn:
		return ClassLive
	case scoreboard.StatePost:
		return ClassFinal
	default:
		return ClassUpcoming
	}
}

// TrackedSummary renders "1 team tracked" or "N teams tracked".
func TrackedSummary(n int) string {
	if n == 1 {
		return "1 team tracked"
	}
	return fmt.Sprintf("%d teams tracked", n)
}

func timeLabel(e scoreboard.Event, state string, loc *time.Location) string {
	switch state {
	case scoreboard.StatePre, scoreboard.StatePostponed:
		return timeutil.EventLabel(e.Date, loc)
	case scoreboard.StateIn:
		return LiveLabel
	case scoreboard.StatePost:
		return FinalLabel
	default:
		return e.Status.Type.Detail
	}
}

func scoreRow(c scoreboard.Competitor) ScoreRow {
	row := ScoreRow{Label: MissingName, Score: MissingScore, IsWinner: c.Winner}
	if name, ok := c.DisplayName(); ok {
		row.Label = name
	}
	if c.Score.Present {
		row.Score = c.Score.Value
	}
	return row
}

func detailLine(e scoreboard.Event, comp scoreboard.Competition) string {
	parts := make([]string, 0, 3)
	if venue := comp.VenueName(); venue != "" {
		parts = append(parts, venue)
	}
	if broadcast := comp.BroadcastName(); broadcast != "" {
		parts = append(parts, "Broadcast: "+broadcast)
	}
	if series := e.SeriesSummary(); series != "" {
		parts = append(parts, series)
	}
	return strings.Join(parts, detailSeparator)
}
