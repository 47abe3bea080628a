package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps blobs in a thread-safe map. Contents are lost on restart.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string]string
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		blobs: make(map[string]string),
	}
}

// Get returns the blob stored under key.
func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.blobs[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set replaces the blob stored under key.
func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[key] = value
	return nil
}

// Keys returns the stored keys (unordered).
func (s *MemoryStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.blobs))
	for k := range s.blobs {
		keys = append(keys, k)
	}
	return keys
}
