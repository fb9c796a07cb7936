package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "fortune:attempt:"

// RedisStore keeps each attempt as a JSON value whose key expires after
// the attempt TTL. Every save refreshes the expiry.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) key(id string) string { return redisKeyPrefix + id }

func (s *RedisStore) CreateAttempt(ctx context.Context, a Attempt) error {
	data, err := json.Marshal(a)
	if err != nil {
		return err
	}
	ok, err := s.client.SetNX(ctx, s.key(a.ID), data, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("storing attempt: %w", err)
	}
	if !ok {
		return fmt.Errorf("attempt %s already exists", a.ID)
	}
	return nil
}

func (s *RedisStore) GetAttempt(ctx context.Context, id string) (Attempt, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Attempt{}, ErrNotFound
	}
	if err != nil {
		return Attempt{}, fmt.Errorf("loading attempt: %w", err)
	}

	var a Attempt
	if err := json.Unmarshal(data, &a); err != nil {
		return Attempt{}, fmt.Errorf("decoding attempt %s: %w", id, err)
	}
	return a, nil
}

func (s *RedisStore) SaveAttempt(ctx context.Context, a Attempt) error {
	data, err := json.Marshal(a)
	if err != nil {
		return err
	}
	ok, err := s.client.SetXX(ctx, s.key(a.ID), data, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("storing attempt: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *RedisStore) DeleteAttempt(ctx context.Context, id string) error {
	n, err := s.client.Del(ctx, s.key(id)).Result()
	if err != nil {
		return fmt.Errorf("deleting attempt: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// PurgeAttempts is a no-op: redis expires keys on its own.
func (s *RedisStore) PurgeAttempts(context.Context, time.Time) ([]string, error) {
	return nil, nil
}

func (s *RedisStore) Check(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
