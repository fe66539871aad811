package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/selimc/focusly/internal/store"
)

// Config carries process-level settings. Everything is optional; defaults
// keep the app runnable with no environment at all.
type Config struct {
	DBPath   string // FOCUSLY_DB
	LogLevel string // FOCUSLY_LOG_LEVEL: debug, info, warn, error
}

// Load reads an optional .env file and the environment. A missing .env is
// not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBPath:   os.Getenv("FOCUSLY_DB"),
		LogLevel: os.Getenv("FOCUSLY_LOG_LEVEL"),
	}

	if cfg.DBPath == "" {
		path, err := store.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		cfg.DBPath = path
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg, nil
}
