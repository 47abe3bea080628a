package dashboard

import (
	"strings"
	"time"

	"sportsbase/internal/views"
)

// Indicator is the status shown next to the refresh button.
type Indicator string

const (
	IndicatorIdle       Indicator = "idle"
	IndicatorRefreshing Indicator = "refreshing"
	IndicatorOK         Indicator = "ok"
	IndicatorFailed     Indicator = "failed"
)

// User-facing texts.
const (
	RefreshingLabel      = "Refreshing…"
	FailedLabel          = "Last update failed"
	NoLeaguesAdvisory    = "Choose at least one league to see live scores."
	NoTrackedGamesAdvice = "None of your tracked teams have games today. Check back later or refresh again soon!"
)

// Dashboard is the result of the latest refresh cycle.
type Dashboard struct {
	Sections      []views.LeagueSection `json:"sections"`
	Indicator     Indicator             `json:"status"`
	StatusLabel   string                `json:"statusLabel"`
	Advisory      string                `json:"advisory,omitempty"`
	FailedLeagues []string              `json:"failedLeagues,omitempty"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

// FailedAdvisory names the leagues whose data could not be loaded.
func FailedAdvisory(names []string) string {
	return "We had trouble loading scoreboards for " + strings.Join(names, ", ") + ". Please try refreshing."
}

// hasTeamViews reports whether any section tracks at least one known team.
func hasTeamViews(sections []views.LeagueSection) bool {
	for _, s := range sections {
		if len(s.Teams) > 0 {
			return true
		}
	}
	return false
}

func (d Dashboard) clone() Dashboard {
	out := d
	out.Sections = append([]views.LeagueSection(nil), d.Sections...)
	out.FailedLeagues = append([]string(nil), d.FailedLeagues...)
	return out
}
