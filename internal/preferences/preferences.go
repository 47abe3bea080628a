// Package preferences persists the user's league and team selections.
package preferences

// Preferences is the user's selection. Every key of SelectedTeamIDsByLeague is
// expected to appear in SelectedLeagueIDs once reconciled.
type Preferences struct {
	SelectedLeagueIDs       []string            `json:"selectedLeagueIds"`
	SelectedTeamIDsByLeague map[string][]string `json:"selectedTeamIdsByLeague"`
}

// Empty returns preferences with no selection.
func Empty() Preferences {
	return Preferences{
		SelectedLeagueIDs:       []string{},
		SelectedTeamIDsByLeague: map[string][]string{},
	}
}

// HasLeagues reports whether any league is selected.
func (p Preferences) HasLeagues() bool {
	return len(p.SelectedLeagueIDs) > 0
}

// TeamsFor returns a copy of the team ids tracked for a league.
func (p Preferences) TeamsFor(leagueID string) []string {
	ids := p.SelectedTeamIDsByLeague[leagueID]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// Clone returns a deep copy.
func (p Preferences) Clone() Preferences {
	out := Preferences{
		SelectedLeagueIDs:       append([]string{}, p.SelectedLeagueIDs...),
		SelectedTeamIDsByLeague: make(map[string][]string, len(p.SelectedTeamIDsByLeague)),
	}
	for k, v := range p.SelectedTeamIDsByLeague {
		out.SelectedTeamIDsByLeague[k] = append([]string{}, v...)
	}
	return out
}
