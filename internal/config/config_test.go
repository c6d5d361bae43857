package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.Cache.Root)
	assert.Equal(t, 60, cfg.Freshness.BurstSeconds)
	assert.False(t, cfg.Freshness.BurstNoCache)
	assert.Equal(t, 900, cfg.Freshness.ActiveSeconds)
	assert.Equal(t, 3600, cfg.Freshness.IdleSeconds)
	assert.Equal(t, 10, cfg.Origin.TimeoutSeconds)
	assert.Equal(t, "files", cfg.Registry.Backend)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`cache:
  root: /var/cache/boards
freshness:
  active_seconds: 300
origin:
  timeout_seconds: 5
registry:
  backend: sqlite
  sqlite_path: /var/lib/boards/registry.db
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	t.Setenv("ADVENTBOARD_CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/var/cache/boards", cfg.Cache.Root)
	assert.Equal(t, 300, cfg.Freshness.ActiveSeconds)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, 60, cfg.Freshness.BurstSeconds)
	assert.Equal(t, 5, cfg.Origin.TimeoutSeconds)
	assert.Equal(t, "sqlite", cfg.Registry.Backend)
	assert.Equal(t, "/var/lib/boards/registry.db", cfg.Registry.SQLitePath)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache:\n  root: /from/file\n"), 0o644))
	t.Setenv("ADVENTBOARD_CONFIG_PATH", path)
	t.Setenv("ADVENTBOARD_CACHE_ROOT", "/from/env")
	t.Setenv("ADVENTBOARD_BURST_NO_CACHE", "true")
	t.Setenv("ADVENTBOARD_IDLE_SECONDS", "7200")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/from/env", cfg.Cache.Root)
	assert.True(t, cfg.Freshness.BurstNoCache)
	assert.Equal(t, 7200, cfg.Freshness.IdleSeconds)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("ADVENTBOARD_ACTIVE_SECONDS", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADVENTBOARD_ACTIVE_SECONDS")
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("ADVENTBOARD_REGISTRY_BACKEND", "redis")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "registry backend")
}

func TestOriginTimeout(t *testing.T) {
	o := OriginConfig{TimeoutSeconds: 15}
	assert.Equal(t, "15s", o.Timeout().String())
}
