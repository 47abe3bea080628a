package views

import "sportsbase/internal/domain/teams"

// State classes drive card styling in the front-end.
const (
	ClassLive     = "live"
	ClassFinal    = "final"
	ClassUpcoming = "upcoming"
)

// Fallback texts used when the payload is missing a value.
const (
	NoGamesText       = "No games on the board for today."
	DefaultStateLabel = "Scheduled"
	MissingName       = "TBD"
	MissingScore      = "—"
	LiveLabel         = "Live"
	FinalLabel        = "Final"
	detailSeparator   = " • "
)

// ScoreRow is one competitor line on an event card.
type ScoreRow struct {
	Label    string `json:"label"`
	Score    string `json:"score"`
	IsWinner bool   `json:"isWinner"`
}

// EventView is a single game seen from a tracked team's perspective.
type EventView struct {
	ID         string   `json:"id"`
	State      string   `json:"state"`
	StateClass string   `json:"stateClass"`
	StateLabel string   `json:"stateLabel"`
	TimeLabel  string   `json:"timeLabel"`
	Primary    ScoreRow `json:"primaryRow"`
	Opponent   ScoreRow `json:"opponentRow"`
	DetailLine string   `json:"detailLine"`
}

// TeamView is a tracked team with its games for the current scoreboard.
type TeamView struct {
	Team     teams.Team  `json:"team"`
	Subtitle string      `json:"subtitle"`
	LogoAlt  string      `json:"logoAlt,omitempty"`
	Events   []EventView `json:"events"`
	// Placeholder is set only when Events is empty.
	Placeholder string `json:"placeholder,omitempty"`
}

// LeagueSection groups the tracked teams of one league.
type LeagueSection struct {
	LeagueID   string     `json:"leagueId"`
	LeagueName string     `json:"leagueName"`
	Summary    string     `json:"summary"`
	Teams      []TeamView `json:"teams"`
}
