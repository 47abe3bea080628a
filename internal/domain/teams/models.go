package teams

// Team is the normalized team shape shared by providers, the picker and the view builder.
type Team struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ShortName    string `json:"shortName"`
	Location     string `json:"location"`
	Abbreviation string `json:"abbreviation"`
	LogoURL      string `json:"logoUrl,omitempty"`
}

// Subtitle is the secondary label for a team: its location, else its abbreviation.
func (t Team) Subtitle() string {
	if t.Location != "" {
		return t.Location
	}
	return t.Abbreviation
}

// Index maps teams by id. Later duplicates win.
func Index(items []Team) map[string]Team {
	idx := make(map[string]Team, len(items))
	for _, t := range items {
		idx[t.ID] = t
	}
	return idx
}
