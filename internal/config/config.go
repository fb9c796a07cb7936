package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// Attempt store backends.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

type Config struct {
	HTTPAddr    string        `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel    slog.Level    `env:"LOG_LEVEL" envDefault:"INFO"`
	StaticDir   string        `env:"STATIC_DIR" envDefault:"public"`
	CatalogPath string        `env:"CATALOG_PATH"`
	Store       string        `env:"STORE" envDefault:"memory"`
	DBPath      string        `env:"DB_PATH" envDefault:"data/fortune.db"`
	RedisURL    string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	AttemptTTL  time.Duration `env:"ATTEMPT_TTL" envDefault:"2h"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	switch cfg.Store {
	case StoreMemory, StoreSQLite, StoreRedis:
	default:
		return nil, fmt.Errorf("unknown STORE %q", cfg.Store)
	}
	if cfg.AttemptTTL <= 0 {
		return nil, fmt.Errorf("ATTEMPT_TTL must be positive, got %s", cfg.AttemptTTL)
	}
	return &cfg, nil
}
