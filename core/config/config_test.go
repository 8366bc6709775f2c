package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"spawner-loot/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "log", cfg.Server.Economy)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 250*time.Millisecond, cfg.Engine.Cooldown())
	assert.Equal(t, 45, cfg.Engine.PageSize)
	assert.True(t, cfg.Engine.PageSizeValid())
	assert.Equal(t, uint64(64), cfg.Engine.Batch())
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "catalog/items.yaml", cfg.Catalog.Object)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("ENGINE_COOLDOWN_MS", "500")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, cfg.Engine.Cooldown())
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoadConfigDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ENGINE_SIPHON_BATCH=8\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("ENGINE_SIPHON_BATCH") })

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, uint64(8), cfg.Engine.Batch())
}

func TestEngineFallbacks(t *testing.T) {
	e := config.Engine{}
	assert.Equal(t, time.Second, e.CooldownSweep())
	assert.Zero(t, e.SaveInterval())
	assert.Equal(t, uint64(1), e.Batch())
	assert.False(t, config.Engine{PageSize: 54}.PageSizeValid())
}
