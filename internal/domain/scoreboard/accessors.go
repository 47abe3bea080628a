package scoreboard

// Accessors return a zero value (and ok=false where it matters) when a field is missing,
// so callers never chase nil pointers through the payload.

// State returns status.type.state, defaulting to "pre".
func (e Event) State() string {
	if e.Status.Type.State == "" {
		return StatePre
	}
	return e.Status.Type.State
}

// Competition returns the first competition of the event.
func (e Event) Competition() (Competition, bool) {
	if len(e.Competitions) == 0 {
		return Competition{}, false
	}
	return e.Competitions[0], true
}

// SeriesSummary returns series.summary or "".
func (e Event) SeriesSummary() string {
	if e.Series == nil {
		return ""
	}
	return e.Series.Summary
}

// InvolvesTeam reports whether teamID is among the first competition's competitors.
func (e Event) InvolvesTeam(teamID string) bool {
	comp, ok := e.Competition()
	if !ok {
		return false
	}
	_, found := comp.Competitor(teamID)
	return found
}

// Competitor returns the first competitor whose team id matches.
func (c Competition) Competitor(teamID string) (Competitor, bool) {
	for _, comp := range c.Competitors {
		if comp.TeamID() == teamID {
			return comp, true
		}
	}
	return Competitor{}, false
}

// Opponent returns the first competitor whose team id differs from teamID.
func (c Competition) Opponent(teamID string) (Competitor, bool) {
	for _, comp := range c.Competitors {
		if comp.TeamID() != teamID {
			return comp, true
		}
	}
	return Competitor{}, false
}

// VenueName returns venue.fullName or "".
func (c Competition) VenueName() string {
	if c.Venue == nil {
		return ""
	}
	return c.Venue.FullName
}

// BroadcastName prefers the first broadcast's media short name over its first alternate name.
func (c Competition) BroadcastName() string {
	if len(c.Broadcasts) == 0 {
		return ""
	}
	b := c.Broadcasts[0]
	if b.Media != nil && b.Media.ShortName != "" {
		return b.Media.ShortName
	}
	if len(b.Names) > 0 {
		return b.Names[0]
	}
	return ""
}

// TeamID returns team.id or "".
func (c Competitor) TeamID() string {
	if c.Team == nil {
		return ""
	}
	return c.Team.ID
}

// DisplayName returns team.displayName, else team.shortDisplayName.
func (c Competitor) DisplayName() (string, bool) {
	if c.Team == nil {
		return "", false
	}
	if c.Team.DisplayName != "" {
		return c.Team.DisplayName, true
	}
	if c.Team.ShortDisplayName != "" {
		return c.Team.ShortDisplayName, true
	}
	return "", false
}

// Label returns the most specific status text: shortDetail, detail, description.
func (s StatusType) Label() (string, bool) {
	for _, v := range []string{s.ShortDetail, s.Detail, s.Description} {
		if v != "" {
			return v, true
		}
	}
	return "", false
}
