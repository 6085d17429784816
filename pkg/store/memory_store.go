package store

import (
	"encoding/json"
	"log"
	"sync"
)

// memoryStore implements Store in process memory. It backs DSN-less dev runs
// and tests; values do not survive a restart.
type memoryStore struct {
	mu     sync.RWMutex
	values map[string]map[string]string
}

// NewMemoryStore creates an in-memory Store.
func NewMemoryStore() Store {
	return &memoryStore{values: make(map[string]map[string]string)}
}

func (s *memoryStore) Get(userID, key string, dest any) (bool, error) {
	s.mu.RLock()
	raw, ok := s.values[userID][key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		log.Printf("[WARN] store: corrupt value for user=%s key=%s: %v", userID, key, err)
		return false, nil
	}
	return true, nil
}

func (s *memoryStore) Set(userID, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values[userID] == nil {
		s.values[userID] = make(map[string]string)
	}
	s.values[userID][key] = string(data)
	return nil
}

func (s *memoryStore) Delete(userID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values[userID], key)
	return nil
}
