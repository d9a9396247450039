package store

import (
	"encoding/json"
	"errors"
	"sync"
)

// MemStore is an in-memory Store used for tests and local scenarios.
type MemStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{data: map[string][]byte{}}
}

func (s *MemStore) Load(name string, out any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.data[name]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		var invalid *json.InvalidUnmarshalError
		if errors.As(err, &invalid) {
			return err
		}
		return nil
	}
	return nil
}

func (s *MemStore) Save(name string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name] = raw
	return nil
}
