package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds runtime configuration for both consoles
type Config struct {
	// LogLevel is one of debug, info, warn or error
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// QuestionsFile overrides the embedded question fixtures when set
	QuestionsFile string `env:"QUESTIONS_FILE"`

	// ShuffleSeed fixes the question order, 0 means seed from the clock
	ShuffleSeed int64 `env:"SHUFFLE_SEED" envDefault:"0"`

	// MinPlayers is the smallest roster that can start a game
	MinPlayers int `env:"MIN_PLAYERS" envDefault:"2"`

	// Redis connection for the reminders store
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// MetricsAddr serves Prometheus metrics when set, e.g. ":9090"
	MetricsAddr string `env:"METRICS_ADDR"`
}

// Load reads an optional .env file and then parses the environment
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	if cfg.MinPlayers < 2 {
		cfg.MinPlayers = 2
	}

	return cfg, nil
}
