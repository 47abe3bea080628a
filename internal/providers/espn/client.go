package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sportsbase/internal/catalog"
	"sportsbase/internal/domain/scoreboard"
	"sportsbase/internal/domain/teams"
	"sportsbase/internal/metrics"
	"sportsbase/internal/providers"
)

// Config controls how the ESPN client reaches the upstream API.
type Config struct {
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches team lists and scoreboards from the ESPN site API.
type Client struct {
	httpClient httpDoer
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// FetchTeams retrieves and normalizes the team list for a league.
func (c *Client) FetchTeams(ctx context.Context, league catalog.LeagueDefinition) ([]teams.Team, error) {
	var payload teamsResponse
	if err := c.getJSON(ctx, league, metrics.ResourceTeams, league.TeamsURL, nil, &payload); err != nil {
		return nil, err
	}
	items, err := extractTeams(payload)
	if err != nil {
		return nil, fetchError(league, metrics.ResourceTeams, 0, err)
	}
	return items, nil
}

// FetchScoreboard retrieves the current scoreboard for a league.
func (c *Client) FetchScoreboard(ctx context.Context, league catalog.LeagueDefinition) (scoreboard.Scoreboard, error) {
	var payload scoreboard.Scoreboard
	query := map[string]string{"limit": scoreboardLimit}
	if err := c.getJSON(ctx, league, metrics.ResourceScoreboard, league.ScoreboardURL, query, &payload); err != nil {
		return scoreboard.Scoreboard{}, err
	}
	return payload, nil
}

func (c *Client) getJSON(ctx context.Context, league catalog.LeagueDefinition, resource, endpoint string, query map[string]string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fetchError(league, resource, 0, err)
	}
	if len(query) > 0 {
		q := req.URL.Query()
		for k, v := range query {
			q.Set(k, v)
		}
		req.URL.RawQuery = q.Encode()
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fetchError(league, resource, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return fetchError(league, resource, resp.StatusCode,
			fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(body))))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fetchError(league, resource, 0, fmt.Errorf("decode: %w", err))
	}
	return nil
}

func fetchError(league catalog.LeagueDefinition, resource string, status int, err error) error {
	return &providers.DataFetchError{
		League:     league.Name,
		Resource:   resource,
		StatusCode: status,
		Err:        err,
	}
}
