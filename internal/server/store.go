package server

import (
	"context"
	"errors"
	"time"

	"github.com/watchingglass/fortune/internal/fortune"
)

var ErrNotFound = errors.New("not found")

// Attempt is one visitor's pass through the quiz, kept between requests.
type Attempt struct {
	ID        string          `json:"id"`
	Session   fortune.Session `json:"session"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Store keeps attempts alive while a visitor is on the quiz screen.
// Save and Delete return ErrNotFound for unknown ids.
type Store interface {
	CreateAttempt(ctx context.Context, a Attempt) error
	GetAttempt(ctx context.Context, id string) (Attempt, error)
	SaveAttempt(ctx context.Context, a Attempt) error
	DeleteAttempt(ctx context.Context, id string) error
	// PurgeAttempts removes attempts last touched before cutoff and returns
	// their ids.
	PurgeAttempts(ctx context.Context, cutoff time.Time) ([]string, error)
	Check(ctx context.Context) error
}
