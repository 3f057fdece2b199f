package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poddash.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data:
  root: /srv/pod
  extensions: [".xlsx", ".xls"]
load:
  on_error: skip
server:
  addr: ":9000"
  shutdown_timeout: 2s
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/pod", cfg.Data.Root)
	assert.Equal(t, "output", cfg.Data.OutputDir, "unset keys keep defaults")
	assert.Equal(t, []string{".xlsx", ".xls"}, cfg.Data.Extensions)
	assert.Equal(t, "skip", cfg.Load.OnError)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.GetShutdownTimeout())
	assert.NoError(t, cfg.Validate())
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data: [unterminated"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PODDASH_DATA_ROOT", "/env/data")
	t.Setenv("PODDASH_ADDR", "127.0.0.1:1")
	t.Setenv("PODDASH_ON_ERROR", "skip")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/env/data", cfg.Data.Root)
	assert.Equal(t, "127.0.0.1:1", cfg.Server.Addr)
	assert.Equal(t, "skip", cfg.Load.OnError)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty root", func(c *Config) { c.Data.Root = "" }},
		{"csv extension", func(c *Config) { c.Data.Extensions = []string{".csv"} }},
		{"bad policy", func(c *Config) { c.Load.OnError = "retry" }},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }},
		{"bad timeout", func(c *Config) { c.Server.ReadTimeout = "soon" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "poddash.yaml")
	cfg := DefaultConfig()
	cfg.Server.Addr = ":7000"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
