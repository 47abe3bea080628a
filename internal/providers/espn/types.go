package espn

type teamsResponse struct {
	Sports []sportResponse `json:"sports"`
}

type sportResponse struct {
	Leagues []leagueResponse `json:"leagues"`
}

type leagueResponse struct {
	// Teams stays nil when the payload omits the array entirely.
	Teams []teamEntry `json:"teams"`
}

type teamEntry struct {
	Team teamResponse `json:"team"`
}

type teamResponse struct {
	ID               string         `json:"id"`
	DisplayName      string         `json:"displayName"`
	ShortDisplayName string         `json:"shortDisplayName"`
	Location         string         `json:"location"`
	Abbreviation     string         `json:"abbreviation"`
	Logos            []logoResponse `json:"logos"`
}

type logoResponse struct {
	Href string `json:"href"`
}
