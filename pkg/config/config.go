package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var dotenvOnce sync.Once

// Load populates a configuration struct from environment variables based on
// `env` field tags. On first use it loads a local .env file if one exists;
// a missing .env file is not an error.
//
// Example:
//
//	type Config struct {
//		Endpoint string        `env:"FLAGS_ENDPOINT,required"`
//		TTL      time.Duration `env:"FLAGS_TTL" envDefault:"5m"`
//	}
//
//	cfg, err := config.Load[Config]()
func Load[T any]() (T, error) {
	dotenvOnce.Do(func() {
		// The .env file is optional in all environments.
		_ = godotenv.Load()
	})

	cfg, err := env.ParseAs[T]()
	if err != nil {
		var zero T
		return zero, errors.Join(ErrParseFailed, err)
	}
	return cfg, nil
}

// MustLoad is like Load but panics on failure. Intended for process startup
// where a broken configuration should prevent the application from running.
func MustLoad[T any]() T {
	cfg, err := Load[T]()
	if err != nil {
		panic(err)
	}
	return cfg
}
