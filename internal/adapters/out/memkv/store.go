// Package memkv provides an in-memory implementation of the key-value storage
// port. It backs the service when no database is configured and the unit tests
// of everything layered above the port.
package memkv

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// Store is a concurrency-safe in-memory key-value store.
// The zero value is not usable; create instances with NewStore.
type Store struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{data: make(map[string]string)}
}

// List returns all keys starting with prefix, in ascending key order.
func (s *Store) List(_ context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0)
	for key := range s.data {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}

	sort.Strings(keys)
	return keys, nil
}

// Get retrieves the value stored under key.
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	return value, ok, nil
}

// Set writes value under key, overwriting any existing value.
func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}
