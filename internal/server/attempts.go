package server

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/watchingglass/fortune/internal/fortune"
)

// Attempts runs quiz actions against stored attempts and announces every
// change on its broker.
type Attempts struct {
	quiz   *fortune.Quiz
	store  Store
	broker *Broker
	now    func() time.Time
}

func NewAttempts(quiz *fortune.Quiz, store Store) *Attempts {
	return &Attempts{
		quiz:   quiz,
		store:  store,
		broker: NewBroker(),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *Attempts) Quiz() *fortune.Quiz { return s.quiz }

func (s *Attempts) Events() *Broker { return s.broker }

// Start creates a fresh attempt at the first question.
func (s *Attempts) Start(ctx context.Context) (Attempt, error) {
	now := s.now()
	a := Attempt{
		ID:        uuid.NewString(),
		Session:   s.quiz.Begin(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.CreateAttempt(ctx, a); err != nil {
		return Attempt{}, fmt.Errorf("creating attempt: %w", err)
	}
	return a, nil
}

// Get loads an attempt. Attempts saved under a catalog that no longer fits,
// for instance after CATALOG_PATH changed, are reported as not found so the
// visitor starts over.
func (s *Attempts) Get(ctx context.Context, id string) (Attempt, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Attempt{}, ErrNotFound
	}
	a, err := s.store.GetAttempt(ctx, id)
	if err != nil {
		return Attempt{}, err
	}
	if !s.quiz.Fits(a.Session.State) {
		return Attempt{}, ErrNotFound
	}
	return a, nil
}

// Apply reduces action into the attempt and persists the result.
func (s *Attempts) Apply(ctx context.Context, a Attempt, action fortune.Action) (Attempt, error) {
	sess, err := s.quiz.Apply(a.Session, action)
	if err != nil {
		return a, err
	}
	a.Session = sess
	a.UpdatedAt = s.now()
	if err := s.store.SaveAttempt(ctx, a); err != nil {
		return a, fmt.Errorf("saving attempt: %w", err)
	}

	view := newAttemptView(s.quiz, a)
	s.broker.Publish(a.ID, AttemptEvent{Type: eventUpdated, Attempt: &view})
	return a, nil
}

// Purge removes attempts idle since before cutoff and tells their
// subscribers they are gone.
func (s *Attempts) Purge(ctx context.Context, cutoff time.Time) ([]string, error) {
	ids, err := s.store.PurgeAttempts(ctx, cutoff)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		s.broker.Publish(id, AttemptEvent{Type: eventDiscarded})
	}
	return ids, nil
}

// Discard forgets the attempt, as when the visitor leaves for home.
func (s *Attempts) Discard(ctx context.Context, id string) error {
	if err := s.store.DeleteAttempt(ctx, id); err != nil {
		return err
	}
	s.broker.Publish(id, AttemptEvent{Type: eventDiscarded})
	return nil
}
