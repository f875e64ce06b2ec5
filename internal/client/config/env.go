package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig is a DTO for environment parsing; zero values mean "not set"
// and leave the current Config value in place.
type envConfig struct {
	ServerEndpointAddr string        `env:"LIBRIS_SERVER_ADDR"`
	DatabasePath       string        `env:"LIBRIS_DB_PATH"`
	RequestTimeout     time.Duration `env:"LIBRIS_REQUEST_TIMEOUT"`
}

// parseEnv overlays cfg with LIBRIS_* environment variables.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = ec.ServerEndpointAddr
	}
	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
}
