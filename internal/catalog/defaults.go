package catalog

const espnSiteAPI = "https://site.api.espn.com/apis/site/v2/sports"

var defaultLeagues = []LeagueDefinition{
	{
		ID:            "nba",
		Name:          "NBA Basketball",
		Description:   "Daily NBA matchups and playoff scoreboards.",
		TeamsURL:      espnSiteAPI + "/basketball/nba/teams",
		ScoreboardURL: espnSiteAPI + "/basketball/nba/scoreboard",
	},
	{
		ID:            "nfl",
		Name:          "NFL Football",
		Description:   "Full NFL slate, including preseason, regular season, and playoffs.",
		TeamsURL:      espnSiteAPI + "/football/nfl/teams",
		ScoreboardURL: espnSiteAPI + "/football/nfl/scoreboard",
	},
	{
		ID:            "mlb",
		Name:          "MLB Baseball",
		Description:   "Live MLB linescores and finals straight from the ballpark.",
		TeamsURL:      espnSiteAPI + "/baseball/mlb/teams",
		ScoreboardURL: espnSiteAPI + "/baseball/mlb/scoreboard",
	},
	{
		ID:            "nhl",
		Name:          "NHL Hockey",
		Description:   "Track every NHL faceoff, including overtime and shootout finishes.",
		TeamsURL:      espnSiteAPI + "/hockey/nhl/teams",
		ScoreboardURL: espnSiteAPI + "/hockey/nhl/scoreboard",
	},
	{
		ID:            "mls",
		Name:          "MLS Soccer",
		Description:   "Major League Soccer fixtures and live match commentary.",
		TeamsURL:      espnSiteAPI + "/soccer/usa.1/teams",
		ScoreboardURL: espnSiteAPI + "/soccer/usa.1/scoreboard",
	},
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultLeagues)
	if err != nil {
		panic(err)
	}
	return c
}
