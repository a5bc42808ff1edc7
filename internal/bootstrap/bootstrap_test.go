package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlagsDefaults(t *testing.T) {
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvMetricsAddr, "")
	t.Setenv(EnvAssets, "")

	s, err := ParseFlags("outbreak", nil)
	require.NoError(t, err)
	assert.Equal(t, "data/outbreak.yaml", s.ConfigPath)
	assert.Empty(t, s.MetricsAddr)
	assert.Equal(t, "assets", s.AssetsDir)
	assert.Zero(t, s.Seed)
}

func TestParseFlagsEnvironmentThenFlags(t *testing.T) {
	t.Setenv(EnvConfig, "/etc/outbreak.yaml")
	t.Setenv(EnvMetricsAddr, ":9100")

	s, err := ParseFlags("outbreak", nil)
	require.NoError(t, err)
	assert.Equal(t, "/etc/outbreak.yaml", s.ConfigPath)
	assert.Equal(t, ":9100", s.MetricsAddr)

	s, err = ParseFlags("outbreak", []string{"-config", "local.yaml", "-seed", "9"})
	require.NoError(t, err)
	assert.Equal(t, "local.yaml", s.ConfigPath)
	assert.Equal(t, int64(9), s.Seed)
}

func TestParseFlagsRejectsUnknown(t *testing.T) {
	_, err := ParseFlags("outbreak", []string{"-nope"})
	assert.Error(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvAssets+"=/srv/assets\n"), 0o644))
	t.Setenv(EnvAssets, "")
	os.Unsetenv(EnvAssets)
	t.Chdir(dir)

	require.NoError(t, LoadEnv())
	assert.Equal(t, "/srv/assets", os.Getenv(EnvAssets))
}

func TestLoadEnvMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	assert.NoError(t, LoadEnv())
}

func TestLoadConfigAppliesSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outbreak.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 3\nspawn:\n  zombies: 2\n"), 0o644))

	cfg, err := (&Settings{ConfigPath: path}).LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, int64(3), cfg.Seed)
	assert.Equal(t, 2, cfg.Spawn.Zombies)

	cfg, err = (&Settings{ConfigPath: path, Seed: 11}).LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, int64(11), cfg.Seed)
}

func TestStartMetricsOff(t *testing.T) {
	assert.Nil(t, (&Settings{}).StartMetrics(context.Background()))
}
