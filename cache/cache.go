// Package cache provides the injectable byte store that memoizes fetched
// documents, so a URL is retrieved once per store lifetime and read from
// memory thereafter.
package cache

import (
	"sync"

	"github.com/EgbieAndersonUku1/render-hidden-word/errkind"
)

// Store is a key-value byte store. Implementations must be safe for
// concurrent use.
type Store interface {
	// Get returns the data cached under key and whether it was present.
	Get(key string) ([]byte, bool)

	// Set stores data under key. Empty keys and empty data are rejected.
	Set(key string, data []byte) error
}

// Memory returns an in-process Store backed by a mutex-guarded map.
func Memory() Store {
	return &memoryStore{entries: make(map[string][]byte)}
}

type memoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func (s *memoryStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.entries[key]
	return data, ok
}

func (s *memoryStore) Set(key string, data []byte) error {
	const op = "cache.Set"

	if key == "" {
		return errkind.New(errkind.Value, op, "key must not be empty")
	}
	if len(data) == 0 {
		return errkind.New(errkind.Value, op, "data must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = data
	return nil
}

// GetOrFill returns the data cached under key, calling fill to populate
// the store on a miss. A nil store disables memoization and always calls
// fill.
func GetOrFill(store Store, key string, fill func() ([]byte, error)) ([]byte, error) {
	if store != nil {
		if data, ok := store.Get(key); ok {
			return data, nil
		}
	}

	data, err := fill()
	if err != nil {
		return nil, err
	}

	if store != nil {
		if err := store.Set(key, data); err != nil {
			return nil, err
		}
	}
	return data, nil
}
