package store

import (
	"context"
	"sync"

	"regdesk/pkg/platform/sentinel"
)

// InMemory is the settings store for tests and storeless deployments.
type InMemory struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewInMemory() *InMemory {
	return &InMemory{values: make(map[string]string)}
}

func (s *InMemory) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	if !ok {
		return "", sentinel.ErrNotFound
	}
	return value, nil
}

func (s *InMemory) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
