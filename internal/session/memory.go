package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory. Used in tests and in
// db-less runs; records do not survive a restart.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string][]byte{}}
}

func (s *MemoryStore) Load(_ context.Context, conversationID string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.data[conversationID]
	if !ok {
		return nil, ErrNotFound
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	if rec.Profile == nil {
		rec.Profile = map[string]string{}
	}
	return &rec, nil
}

func (s *MemoryStore) Save(_ context.Context, conversationID string, rec *Record) error {
	rec.UpdatedAt = time.Now().UTC()
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[conversationID] = raw
	return nil
}
