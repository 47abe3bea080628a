package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"sportsbase/internal/catalog"
	"sportsbase/internal/logging"
	"sportsbase/internal/storage"
)

// DefaultPrefix namespaces both persisted keys.
const DefaultPrefix = "sportsbase:"

const (
	leaguesKey = "selectedLeagues"
	teamsKey   = "selectedTeams"
)

// Store loads, saves and reconciles preferences over a blob store.
type Store struct {
	blobs   storage.BlobStore
	catalog *catalog.Catalog
	prefix  string
	logger  *slog.Logger
}

// NewStore builds a preference store. An empty prefix uses DefaultPrefix.
func NewStore(blobs storage.BlobStore, cat *catalog.Catalog, prefix string, logger *slog.Logger) *Store {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Store{blobs: blobs, catalog: cat, prefix: prefix, logger: logger}
}

// LeaguesKey is the storage key holding the ordered league ids.
func (s *Store) LeaguesKey() string { return s.prefix + leaguesKey }

// TeamsKey is the storage key holding the league to team ids map.
func (s *Store) TeamsKey() string { return s.prefix + teamsKey }

// Load reads both blobs and returns reconciled preferences. Missing, unreadable
// or malformed values are treated as absent, so Load never fails.
func (s *Store) Load(ctx context.Context) Preferences {
	leagues, ok := s.loadLeagues(ctx)
	if !ok || len(leagues) == 0 {
		return Empty()
	}
	teams := s.loadTeams(ctx)
	return s.Reconcile(Preferences{SelectedLeagueIDs: leagues, SelectedTeamIDsByLeague: teams})
}

// Save writes both blobs. Writes overwrite any previous value.
func (s *Store) Save(ctx context.Context, p Preferences) error {
	p = s.Reconcile(p)
	leagues, err := json.Marshal(p.SelectedLeagueIDs)
	if err != nil {
		return fmt.Errorf("preferences: encode leagues: %w", err)
	}
	teams, err := json.Marshal(p.SelectedTeamIDsByLeague)
	if err != nil {
		return fmt.Errorf("preferences: encode teams: %w", err)
	}
	if err := s.blobs.Set(ctx, s.LeaguesKey(), string(leagues)); err != nil {
		return fmt.Errorf("preferences: save leagues: %w", err)
	}
	if err := s.blobs.Set(ctx, s.TeamsKey(), string(teams)); err != nil {
		return fmt.Errorf("preferences: save teams: %w", err)
	}
	logging.Info(s.logger, "preferences saved", logging.FieldCount, len(p.SelectedLeagueIDs))
	return nil
}

// Reconcile keeps only catalog leagues (order kept, duplicates dropped) and
// drops team entries for leagues that are not selected. It is idempotent.
func (s *Store) Reconcile(p Preferences) Preferences {
	out := Empty()
	seen := make(map[string]struct{}, len(p.SelectedLeagueIDs))
	for _, id := range p.SelectedLeagueIDs {
		if _, dup := seen[id]; dup || !s.catalog.Contains(id) {
			continue
		}
		seen[id] = struct{}{}
		out.SelectedLeagueIDs = append(out.SelectedLeagueIDs, id)
	}
	for league, ids := range p.SelectedTeamIDsByLeague {
		if _, ok := seen[league]; !ok || ids == nil {
			continue
		}
		out.SelectedTeamIDsByLeague[league] = append([]string{}, ids...)
	}
	return out
}

func (s *Store) loadLeagues(ctx context.Context) ([]string, bool) {
	raw, ok := s.read(ctx, s.LeaguesKey())
	if !ok {
		return nil, false
	}
	arr, ok := raw.([]any)
	if !ok {
		s.warnParse(s.LeaguesKey(), errNotArray)
		return nil, false
	}
	return stringsOf(arr), true
}

func (s *Store) loadTeams(ctx context.Context) map[string][]string {
	out := map[string][]string{}
	raw, ok := s.read(ctx, s.TeamsKey())
	if !ok {
		return out
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		s.warnParse(s.TeamsKey(), errNotObject)
		return out
	}
	for league, v := range obj {
		arr, ok := v.([]any)
		if !ok {
			continue
		}
		out[league] = stringsOf(arr)
	}
	return out
}

// read fetches and decodes a blob into a generic JSON value.
func (s *Store) read(ctx context.Context, key string) (any, bool) {
	value, err := s.blobs.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logging.Warn(s.logger, "preferences read failed", logging.FieldKey, key, logging.FieldError, err)
		}
		return nil, false
	}
	if value == "" {
		return nil, false
	}
	var decoded any
	if err := json.Unmarshal([]byte(value), &decoded); err != nil {
		s.warnParse(key, err)
		return nil, false
	}
	if decoded == nil {
		return nil, false
	}
	return decoded, true
}

func (s *Store) warnParse(key string, err error) {
	logging.Warn(s.logger, "ignoring stored preferences", logging.FieldKey, key,
		logging.FieldError, &PersistenceParseError{Key: key, Err: err})
}

func stringsOf(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if str, ok := v.(string); ok {
			out = append(out, str)
		}
	}
	return out
}
