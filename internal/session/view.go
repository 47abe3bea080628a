package session

import "sportsbase/internal/selection"

// Step is the screen the user is on.
type Step string

const (
	StepLeagues   Step = "leagues"
	StepTeams     Step = "teams"
	StepDashboard Step = "dashboard"
)

// Feedback texts shown on the setup screens.
const (
	MessageTeamsLoaded    = "Team lists loaded. Pick your clubs and get tracking!"
	MessageTeamLoadFailed = "We could not load teams for this league right now."
	MessageEditing        = "Update your selections and start tracking again when ready."
	MessageBack           = "Adjust your league selections."
	MessageSaveFailed     = "We could not save your selections. Please try again."
)

// TeamGroup is the team picker for one selected league.
type TeamGroup struct {
	LeagueID   string             `json:"leagueId"`
	LeagueName string             `json:"leagueName"`
	Options    []selection.Option `json:"options"`
	// Error is set when the league's teams could not be loaded.
	Error string `json:"error,omitempty"`
}

// SetupView is everything the setup screens render.
type SetupView struct {
	Step       Step               `json:"step"`
	Leagues    []selection.Option `json:"leagues"`
	TeamGroups []TeamGroup        `json:"teamGroups"`
	Message    string             `json:"message,omitempty"`
	IsError    bool               `json:"isError"`
}

func cloneOptions(in []selection.Option) []selection.Option {
	return append([]selection.Option{}, in...)
}

func cloneGroups(in []TeamGroup) []TeamGroup {
	out := make([]TeamGroup, len(in))
	for i, g := range in {
		out[i] = g
		out[i].Options = cloneOptions(g.Options)
	}
	return out
}
