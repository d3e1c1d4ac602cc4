package store

import (
	"encoding/json"
	"log"
	"sync"
)

// MemoryStore implements Store with an in-memory map, used for tests
// and ephemeral runs.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string][]byte)}
}

// Put serializes value and stores it under key.
func (s *MemoryStore) Put(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.items[key] = data
	s.mu.Unlock()
	return nil
}

// Get decodes the stored value into out. Undecodable values are
// treated as absent rather than propagated.
func (s *MemoryStore) Get(key string, out any) (bool, error) {
	s.mu.RLock()
	data, ok := s.items[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("[store] discarding corrupt value for %s: %v", key, err)
		return false, nil
	}
	return true, nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error { return nil }
