package espn

import (
	"errors"

	"sportsbase/internal/domain/teams"
)

var errMissingTeams = errors.New("unexpected team payload")

// extractTeams walks sports[0].leagues[0].teams and maps every entry.
func extractTeams(payload teamsResponse) ([]teams.Team, error) {
	if len(payload.Sports) == 0 || len(payload.Sports[0].Leagues) == 0 {
		return nil, errMissingTeams
	}
	entries := payload.Sports[0].Leagues[0].Teams
	if entries == nil {
		return nil, errMissingTeams
	}
	out := make([]teams.Team, 0, len(entries))
	for _, e := range entries {
		out = append(out, mapTeam(e.Team))
	}
	return out, nil
}

func mapTeam(t teamResponse) teams.Team {
	team := teams.Team{
		ID:           t.ID,
		Name:         t.DisplayName,
		ShortName:    t.ShortDisplayName,
		Location:     t.Location,
		Abbreviation: t.Abbreviation,
	}
	if len(t.Logos) > 0 {
		team.LogoURL = t.Logos[0].Href
	}
	return team
}
