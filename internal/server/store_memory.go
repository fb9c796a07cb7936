package server

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"
)

// MemoryStore keeps attempts in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	attempts map[string]Attempt
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		attempts: make(map[string]Attempt),
	}
}

func (s *MemoryStore) CreateAttempt(_ context.Context, a Attempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.attempts[a.ID]; ok {
		return fmt.Errorf("attempt %s already exists", a.ID)
	}
	s.attempts[a.ID] = clone(a)
	return nil
}

func (s *MemoryStore) GetAttempt(_ context.Context, id string) (Attempt, error) {
	s.mu.RLock()
	a, ok := s.attempts[id]
	s.mu.RUnlock()
	if !ok {
		return Attempt{}, ErrNotFound
	}
	return clone(a), nil
}

func (s *MemoryStore) SaveAttempt(_ context.Context, a Attempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.attempts[a.ID]; !ok {
		return ErrNotFound
	}
	s.attempts[a.ID] = clone(a)
	return nil
}

func (s *MemoryStore) DeleteAttempt(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.attempts[id]; !ok {
		return ErrNotFound
	}
	delete(s.attempts, id)
	return nil
}

func (s *MemoryStore) PurgeAttempts(_ context.Context, cutoff time.Time) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []string
	for id, a := range s.attempts {
		if a.UpdatedAt.Before(cutoff) {
			delete(s.attempts, id)
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *MemoryStore) Check(context.Context) error { return nil }

// clone detaches the answer slice and picker so callers cannot mutate
// stored attempts.
func clone(a Attempt) Attempt {
	a.Session.State.Answers = slices.Clone(a.Session.State.Answers)
	if a.Session.Picker != nil {
		p := *a.Session.Picker
		a.Session.Picker = &p
	}
	return a
}
