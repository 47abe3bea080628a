package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// FSStore persists each blob as its own file under basePath.
type FSStore struct {
	basePath string
}

// NewFSStore constructs a filesystem-backed store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// BasePath exposes the store root (primarily for testing).
func (s *FSStore) BasePath() string {
	if s == nil {
		return ""
	}
	return s.basePath
}

// Get reads the blob for key from disk.
func (s *FSStore) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s == nil {
		return "", errors.New("storage: fs store not configured")
	}
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", err
	}
	return string(data), nil
}

// Set writes the blob atomically (tmp file + rename). Unchanged content is not rewritten.
func (s *FSStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil {
		return errors.New("storage: fs store not configured")
	}
	if key == "" {
		return fmt.Errorf("storage: key required")
	}

	target := s.path(key)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data := []byte(value)
	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}

func (s *FSStore) path(key string) string {
	return filepath.Join(s.basePath, url.QueryEscape(key)+".json")
}
