package catalog

import "fmt"

// LeagueDefinition describes a supported league and where its data lives upstream.
type LeagueDefinition struct {
	ID            string `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	Description   string `json:"description" yaml:"description"`
	TeamsURL      string `json:"teamsUrl" yaml:"teamsUrl"`
	ScoreboardURL string `json:"scoreboardUrl" yaml:"scoreboardUrl"`
}

// unknownLeagueName is used when an id is not in the catalog.
const unknownLeagueName = "this league"

// Catalog is an immutable, ordered registry of leagues.
type Catalog struct {
	leagues []LeagueDefinition
	byID    map[string]int
}

// New builds a catalog, rejecting empty or duplicate ids and missing endpoints.
func New(leagues []LeagueDefinition) (*Catalog, error) {
	c := &Catalog{
		leagues: make([]LeagueDefinition, 0, len(leagues)),
		byID:    make(map[string]int, len(leagues)),
	}
	for _, l := range leagues {
		if l.ID == "" {
			return nil, fmt.Errorf("catalog: league %q has empty id", l.Name)
		}
		if _, dup := c.byID[l.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate league id %q", l.ID)
		}
		if l.TeamsURL == "" || l.ScoreboardURL == "" {
			return nil, fmt.Errorf("catalog: league %q is missing an endpoint", l.ID)
		}
		if l.Name == "" {
			l.Name = l.ID
		}
		c.byID[l.ID] = len(c.leagues)
		c.leagues = append(c.leagues, l)
	}
	return c, nil
}

// ByID looks up a league by id.
func (c *Catalog) ByID(id string) (LeagueDefinition, bool) {
	if c == nil {
		return LeagueDefinition{}, false
	}
	idx, ok := c.byID[id]
	if !ok {
		return LeagueDefinition{}, false
	}
	return c.leagues[idx], true
}

// Contains reports whether id is a known league.
func (c *Catalog) Contains(id string) bool {
	_, ok := c.ByID(id)
	return ok
}

// All returns the leagues in catalog order. The slice is a copy.
func (c *Catalog) All() []LeagueDefinition {
	if c == nil {
		return nil
	}
	out := make([]LeagueDefinition, len(c.leagues))
	copy(out, c.leagues)
	return out
}

// Name returns the display name for id, or a generic label when unknown.
func (c *Catalog) Name(id string) string {
	if l, ok := c.ByID(id); ok {
		return l.Name
	}
	return unknownLeagueName
}
