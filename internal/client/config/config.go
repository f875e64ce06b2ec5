package config

import "time"

// Config holds runtime settings for the libris CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the book-catalog API, including the
//     path prefix (e.g. "http://localhost:8000/api").
//   - DatabasePath: location of the local SQLite database holding the
//     persisted session credential.
//   - RequestTimeout: per-request HTTP timeout.
type Config struct {
	ServerEndpointAddr string
	DatabasePath       string
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:8000/api"
	c.DatabasePath = "libris.db"
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
