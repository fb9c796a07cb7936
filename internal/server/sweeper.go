package server

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper purges attempts that have been idle longer than ttl.
type Sweeper struct {
	attempts *Attempts
	ttl      time.Duration
	interval time.Duration
	logger   *slog.Logger
}

func NewSweeper(attempts *Attempts, ttl, interval time.Duration, logger *slog.Logger) *Sweeper {
	return &Sweeper{attempts: attempts, ttl: ttl, interval: interval, logger: logger}
}

// Run sweeps every interval until ctx is done.
func (s *Sweeper) Run(ctx context.Context) error {
	tick := time.NewTicker(s.interval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-tick.C:
			s.Sweep(ctx, now)
		}
	}
}

func (s *Sweeper) Sweep(ctx context.Context, now time.Time) int {
	ids, err := s.attempts.Purge(ctx, now.Add(-s.ttl))
	if err != nil {
		s.logger.Error("purging attempts failed", "error", err)
		return 0
	}
	if len(ids) > 0 {
		s.logger.Info("purged idle attempts", "count", len(ids))
	}
	return len(ids)
}
