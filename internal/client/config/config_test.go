package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"libris"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, "http://localhost:8000/api", cfg.ServerEndpointAddr)
	require.Equal(t, "libris.db", cfg.DatabasePath)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestParseFlags_OverridesDefaults(t *testing.T) {
	withArgs(t, "-a", "http://api.example.com", "-d", "/tmp/x.db", "-t", "30")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	require.Equal(t, "http://api.example.com", cfg.ServerEndpointAddr)
	require.Equal(t, "/tmp/x.db", cfg.DatabasePath)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestParseEnv_OverridesDefaults(t *testing.T) {
	t.Setenv("LIBRIS_SERVER_ADDR", "http://env.example.com")
	t.Setenv("LIBRIS_REQUEST_TIMEOUT", "45s")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	require.Equal(t, "http://env.example.com", cfg.ServerEndpointAddr)
	require.Equal(t, 45*time.Second, cfg.RequestTimeout)
	// Unset variables keep the default.
	require.Equal(t, "libris.db", cfg.DatabasePath)
}

func TestParseJson_OverlaysFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data, err := json.Marshal(map[string]any{
		"server_endpoint_addr": "http://json.example.com",
		"request_timeout":      "20s",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	withArgs(t, "-c", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "http://json.example.com", cfg.ServerEndpointAddr)
	require.Equal(t, 20*time.Second, cfg.RequestTimeout)
	require.Equal(t, "libris.db", cfg.DatabasePath)
}

func TestParseJson_NoFlag_IsNoop(t *testing.T) {
	withArgs(t)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "http://localhost:8000/api", cfg.ServerEndpointAddr)
}

func TestLoadConfig_Precedence_FlagsBeatEnv(t *testing.T) {
	t.Setenv("LIBRIS_SERVER_ADDR", "http://env.example.com")
	withArgs(t, "-a", "http://flag.example.com")

	cfg := LoadConfig()
	require.Equal(t, "http://flag.example.com", cfg.ServerEndpointAddr)
}
