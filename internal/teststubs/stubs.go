package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"sportsbase/internal/catalog"
	"sportsbase/internal/domain/scoreboard"
	"sportsbase/internal/domain/teams"
	"sportsbase/internal/storage"
)

// StubProvider is a test double for providers.ScoresProvider keyed by league id.
type StubProvider struct {
	Teams         map[string][]teams.Team
	Scoreboards   map[string]scoreboard.Scoreboard
	TeamErrs      map[string]error
	ScoreboardErr map[string]error

	// Gate, when set, blocks every fetch until it is closed or ctx ends.
	Gate chan struct{}
	// Started receives one value per fetch before it waits on Gate.
	Started chan string

	TeamCalls       atomic.Int32
	ScoreboardCalls atomic.Int32

	mu        sync.Mutex
	perLeague map[string]int
}

// FetchTeams returns the configured teams or error for the league while tracking calls.
func (s *StubProvider) FetchTeams(ctx context.Context, league catalog.LeagueDefinition) ([]teams.Team, error) {
	s.TeamCalls.Add(1)
	s.count(league.ID)
	if err := s.wait(ctx, league.ID); err != nil {
		return nil, err
	}
	if err := s.TeamErrs[league.ID]; err != nil {
		return nil, err
	}
	return s.Teams[league.ID], nil
}

// FetchScoreboard returns the configured scoreboard or error for the league while tracking calls.
func (s *StubProvider) FetchScoreboard(ctx context.Context, league catalog.LeagueDefinition) (scoreboard.Scoreboard, error) {
	s.ScoreboardCalls.Add(1)
	s.count(league.ID)
	if err := s.wait(ctx, league.ID); err != nil {
		return scoreboard.Scoreboard{}, err
	}
	if err := s.ScoreboardErr[league.ID]; err != nil {
		return scoreboard.Scoreboard{}, err
	}
	return s.Scoreboards[league.ID], nil
}

// LeagueCalls returns how many fetches of either kind were made for a league.
func (s *StubProvider) LeagueCalls(leagueID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.perLeague[leagueID]
}

func (s *StubProvider) count(leagueID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.perLeague == nil {
		s.perLeague = make(map[string]int)
	}
	s.perLeague[leagueID]++
}

func (s *StubProvider) wait(ctx context.Context, leagueID string) error {
	if s.Started != nil {
		select {
		case s.Started <- leagueID:
		default:
		}
	}
	if s.Gate == nil {
		return nil
	}
	select {
	case <-s.Gate:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// StubBlobStore is a test double for storage.BlobStore with injectable failures.
type StubBlobStore struct {
	mu     sync.Mutex
	Values map[string]string
	GetErr error
	SetErr error
	Sets   int
}

func (s *StubBlobStore) Get(ctx context.Context, key string) (string, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return "", s.GetErr
	}
	v, ok := s.Values[key]
	if !ok {
		return "", storage.ErrNotFound
	}
	return v, nil
}

func (s *StubBlobStore) Set(ctx context.Context, key, value string) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SetErr != nil {
		return s.SetErr
	}
	if s.Values == nil {
		s.Values = make(map[string]string)
	}
	s.Values[key] = value
	s.Sets++
	return nil
}
