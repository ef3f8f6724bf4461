package memory

import (
	"context"
	"sync"
)

// UsageStore is an in-memory implementation of app.UsageStore. State lives
// only for the process lifetime; it backs tests and storage-less runs.
type UsageStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewUsageStore() *UsageStore {
	return &UsageStore{values: make(map[string]string)}
}

func (s *UsageStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *UsageStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
