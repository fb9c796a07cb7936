package server

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/watchingglass/fortune/internal/database"
	"github.com/watchingglass/fortune/internal/fortune"
	"github.com/watchingglass/fortune/internal/migrations"
)

func newDocStore(t *testing.T) Store {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, database.MemoryPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := migrations.Run(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewDocStore(db)
}

func newRedisStore(t *testing.T) Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, time.Hour)
}

func storeBackends(t *testing.T) map[string]func(t *testing.T) Store {
	t.Helper()
	return map[string]func(t *testing.T) Store{
		"memory": func(*testing.T) Store { return NewMemoryStore() },
		"sqlite": newDocStore,
		"redis":  newRedisStore,
	}
}

func sampleAttempt(id string, updated time.Time) Attempt {
	picker := fortune.NewPicker()
	return Attempt{
		ID: id,
		Session: fortune.Session{
			State:  fortune.State{Step: 5, Pending: "#0000FF", Answers: []string{"Warm", "Morning", "56", "Blue", "Creativity"}},
			Picker: &picker,
		},
		CreatedAt: updated,
		UpdatedAt: updated,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	for name, open := range storeBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := open(t)
			now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
			a := sampleAttempt("a1", now)

			if err := s.CreateAttempt(ctx, a); err != nil {
				t.Fatalf("create: %v", err)
			}
			if err := s.CreateAttempt(ctx, a); err == nil {
				t.Fatal("expected duplicate create to fail")
			}

			got, err := s.GetAttempt(ctx, "a1")
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if got.Session.State.Step != 5 || got.Session.State.Pending != "#0000FF" {
				t.Errorf("state = %+v", got.Session.State)
			}
			if len(got.Session.State.Answers) != 5 || got.Session.State.Answers[4] != "Creativity" {
				t.Errorf("answers = %v", got.Session.State.Answers)
			}
			if got.Session.Picker == nil || got.Session.Picker.Color != fortune.DefaultColor {
				t.Errorf("picker = %+v", got.Session.Picker)
			}
			if !got.UpdatedAt.Equal(now) {
				t.Errorf("updatedAt = %s, want %s", got.UpdatedAt, now)
			}

			got.Session.State.Complete = true
			got.Session.Picker = nil
			if err := s.SaveAttempt(ctx, got); err != nil {
				t.Fatalf("save: %v", err)
			}
			again, err := s.GetAttempt(ctx, "a1")
			if err != nil {
				t.Fatalf("get after save: %v", err)
			}
			if !again.Session.State.Complete || again.Session.Picker != nil {
				t.Errorf("save not applied: %+v", again.Session)
			}

			if err := s.DeleteAttempt(ctx, "a1"); err != nil {
				t.Fatalf("delete: %v", err)
			}
			if _, err := s.GetAttempt(ctx, "a1"); !errors.Is(err, ErrNotFound) {
				t.Errorf("get after delete: err = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestStoreUnknownAttempt(t *testing.T) {
	for name, open := range storeBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := open(t)

			if _, err := s.GetAttempt(ctx, "nope"); !errors.Is(err, ErrNotFound) {
				t.Errorf("get: err = %v, want ErrNotFound", err)
			}
			if err := s.SaveAttempt(ctx, sampleAttempt("nope", time.Now())); !errors.Is(err, ErrNotFound) {
				t.Errorf("save: err = %v, want ErrNotFound", err)
			}
			if err := s.DeleteAttempt(ctx, "nope"); !errors.Is(err, ErrNotFound) {
				t.Errorf("delete: err = %v, want ErrNotFound", err)
			}
			if err := s.Check(ctx); err != nil {
				t.Errorf("check: %v", err)
			}
		})
	}
}

func TestStorePurge(t *testing.T) {
	for name, open := range map[string]func(t *testing.T) Store{
		"memory": func(*testing.T) Store { return NewMemoryStore() },
		"sqlite": newDocStore,
	} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := open(t)
			base := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

			for id, updated := range map[string]time.Time{
				"idle-2h": base.Add(-2 * time.Hour),
				"idle-1h": base.Add(-time.Hour),
				"fresh":   base.Add(30 * time.Minute),
			} {
				if err := s.CreateAttempt(ctx, sampleAttempt(id, updated)); err != nil {
					t.Fatalf("create %s: %v", id, err)
				}
			}

			ids, err := s.PurgeAttempts(ctx, base)
			if err != nil {
				t.Fatalf("purge: %v", err)
			}
			slices.Sort(ids)
			if want := []string{"idle-1h", "idle-2h"}; !slices.Equal(ids, want) {
				t.Errorf("purged %v, want %v", ids, want)
			}
			if _, err := s.GetAttempt(ctx, "fresh"); err != nil {
				t.Errorf("fresh attempt purged: %v", err)
			}
		})
	}
}

func TestRedisStoreExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	s := NewRedisStore(client, time.Minute)
	ctx := context.Background()

	if err := s.CreateAttempt(ctx, sampleAttempt("a1", time.Now())); err != nil {
		t.Fatalf("create: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	if _, err := s.GetAttempt(ctx, "a1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound after ttl", err)
	}
}

func TestMemoryStoreIsolatesCallers(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	a := sampleAttempt("a1", time.Now())
	if err := s.CreateAttempt(ctx, a); err != nil {
		t.Fatalf("create: %v", err)
	}

	a.Session.State.Answers[0] = "Cool"
	a.Session.Picker.Color = "#FFFFFF"

	got, _ := s.GetAttempt(ctx, "a1")
	if got.Session.State.Answers[0] != "Warm" || got.Session.Picker.Color != fortune.DefaultColor {
		t.Fatalf("stored attempt was mutated: %+v", got.Session)
	}
}
