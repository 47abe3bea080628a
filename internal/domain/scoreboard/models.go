package scoreboard

// Event states reported in status.type.state.
const (
	StatePre       = "pre"
	StateIn        = "in"
	StatePost      = "post"
	StatePostponed = "postponed"
)

// Scoreboard is the subset of the upstream scoreboard payload the dashboard reads.
type Scoreboard struct {
	Events []Event `json:"events"`
}

type Event struct {
	ID           string        `json:"id"`
	Date         string        `json:"date"`
	Name         string        `json:"name,omitempty"`
	Status       Status        `json:"status"`
	Competitions []Competition `json:"competitions"`
	Series       *Series       `json:"series,omitempty"`
}

type Status struct {
	Type StatusType `json:"type"`
}

type StatusType struct {
	State       string `json:"state"`
	ShortDetail string `json:"shortDetail"`
	Detail      string `json:"detail"`
	Description string `json:"description"`
}

type Competition struct {
	Competitors []Competitor `json:"competitors"`
	Venue       *Venue       `json:"venue,omitempty"`
	Broadcasts  []Broadcast  `json:"broadcasts,omitempty"`
}

type Competitor struct {
	HomeAway string          `json:"homeAway,omitempty"`
	Team     *CompetitorTeam `json:"team,omitempty"`
	Score    Score           `json:"score"`
	Winner   bool            `json:"winner,omitempty"`
}

type CompetitorTeam struct {
	ID               string `json:"id"`
	DisplayName      string `json:"displayName,omitempty"`
	ShortDisplayName string `json:"shortDisplayName,omitempty"`
}

type Venue struct {
	FullName string `json:"fullName"`
}

type Broadcast struct {
	Media *Media   `json:"media,omitempty"`
	Names []string `json:"names,omitempty"`
}

type Media struct {
	ShortName string `json:"shortName"`
}

type Series struct {
	Summary string `json:"summary"`
}
