package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// timeLayout sorts lexically in the same order as the instants it encodes.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// DocStore implements Store on a libSQL database, one JSONB document per
// attempt. The schema is owned by the migrations package.
type DocStore struct {
	db *sql.DB
}

func NewDocStore(db *sql.DB) *DocStore {
	return &DocStore{db: db}
}

func (s *DocStore) CreateAttempt(ctx context.Context, a Attempt) error {
	data, err := json.Marshal(a)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO attempts (id, updated_at, data) VALUES (?, ?, jsonb(?))`,
		a.ID, formatTime(a.UpdatedAt), string(data),
	)
	if err != nil {
		return fmt.Errorf("inserting attempt: %w", err)
	}
	return nil
}

func (s *DocStore) GetAttempt(ctx context.Context, id string) (Attempt, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT json(data) FROM attempts WHERE id = ?`, id,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return Attempt{}, ErrNotFound
	}
	if err != nil {
		return Attempt{}, err
	}

	var a Attempt
	if err := json.Unmarshal([]byte(data), &a); err != nil {
		return Attempt{}, fmt.Errorf("decoding attempt %s: %w", id, err)
	}
	return a, nil
}

func (s *DocStore) SaveAttempt(ctx context.Context, a Attempt) error {
	data, err := json.Marshal(a)
	if err != nil {
		return err
	}
	result, err := s.db.ExecContext(ctx,
		`UPDATE attempts SET updated_at = ?, data = jsonb(?) WHERE id = ?`,
		formatTime(a.UpdatedAt), string(data), a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating attempt: %w", err)
	}
	return requireRow(result)
}

func (s *DocStore) DeleteAttempt(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM attempts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (s *DocStore) PurgeAttempts(ctx context.Context, cutoff time.Time) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`DELETE FROM attempts WHERE updated_at < ? RETURNING id`, formatTime(cutoff),
	)
	if err != nil {
		return nil, fmt.Errorf("purging attempts: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning purged id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("purging attempts: %w", err)
	}
	return ids, nil
}

func (s *DocStore) Check(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func requireRow(result sql.Result) error {
	n, _ := result.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
