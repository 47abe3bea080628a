package server

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"sportsbase/internal/catalog"
	"sportsbase/internal/config"
	"sportsbase/internal/storage"
)

func TestOpenStorageBackends(t *testing.T) {
	ctx := context.Background()

	store, err := openStorage(ctx, config.StorageConfig{Backend: "memory"})
	if _, ok := store.(*storage.MemoryStore); err != nil || !ok {
		t.Fatalf("expected memory store, got %T %v", store, err)
	}

	dir := t.TempDir()
	store, err = openStorage(ctx, config.StorageConfig{Backend: "file", Path: dir})
	fs, ok := store.(*storage.FSStore)
	if err != nil || !ok || fs.BasePath() != dir {
		t.Fatalf("expected fs store at %s, got %T %v", dir, store, err)
	}

	mr := miniredis.RunT(t)
	store, err = openStorage(ctx, config.StorageConfig{Backend: "redis", RedisURL: "redis://" + mr.Addr() + "/0"})
	if err != nil {
		t.Fatalf("expected redis store, got %v", err)
	}
	if err := store.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got, _ := mr.Get("k"); got != "v" {
		t.Fatalf("expected value in redis, got %q", got)
	}
	_ = storage.Close(store)

	if _, err := openStorage(ctx, config.StorageConfig{Backend: "postgres"}); err == nil {
		t.Fatalf("expected error without dsn")
	}
	if _, err := openStorage(ctx, config.StorageConfig{Backend: "etcd"}); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestBuildStorageFallsBackToMemory(t *testing.T) {
	store := buildStorage(context.Background(), config.StorageConfig{Backend: "redis", RedisURL: "not a url"}, nil)
	if _, ok := store.(*storage.MemoryStore); !ok {
		t.Fatalf("expected memory fallback, got %T", store)
	}
}

func TestBuildCatalog(t *testing.T) {
	if got := buildCatalog("", nil); len(got.All()) != len(catalog.Default().All()) {
		t.Fatalf("expected built-in catalog")
	}

	path := filepath.Join(t.TempDir(), "leagues.yaml")
	doc := `leagues:
  - id: wnba
    name: WNBA Basketball
    teamsUrl: https://example.com/wnba/teams
    scoreboardUrl: https://example.com/wnba/scoreboard
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	got := buildCatalog(path, nil)
	if all := got.All(); len(all) != 1 || all[0].ID != "wnba" {
		t.Fatalf("expected file catalog, got %+v", all)
	}

	got = buildCatalog(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	if !got.Contains("nba") {
		t.Fatalf("expected fallback to built-in catalog")
	}
}
