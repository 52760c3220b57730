package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "glass-oak"), cfg.DataDir)
	assert.Equal(t, "file", cfg.Store)
	assert.Equal(t, "savegame", cfg.Slot)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, filepath.Join(tmp, "glass-oak", "glass-oak.log"), cfg.LogFile)
	assert.Equal(t, 2222, cfg.SSHPort)
	assert.Zero(t, cfg.Seed)
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GLASSOAK_DATA_DIR", dir)
	t.Setenv("GLASSOAK_STORE", "bolt")
	t.Setenv("GLASSOAK_SLOT", "alice")
	t.Setenv("GLASSOAK_SEED", "99")
	t.Setenv("GLASSOAK_LOG_FORMAT", "json")
	t.Setenv("GLASSOAK_SSH_PORT", "2022")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, "bolt", cfg.Store)
	assert.Equal(t, "alice", cfg.Slot)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 2022, cfg.SSHPort)
	assert.Equal(t, filepath.Join(dir, "glass-oak.log"), cfg.LogFile)
}

func TestLoadBadNumber(t *testing.T) {
	t.Setenv("GLASSOAK_DATA_DIR", t.TempDir())
	t.Setenv("GLASSOAK_SEED", "not-a-number")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestDefaultDataDirFallback(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	dir, err := DefaultDataDir()
	if err != nil {
		t.Skip("skipping: no user home directory available in test environment")
	}
	assert.True(t, strings.HasSuffix(dir, filepath.Join(".local", "share", "glass-oak")), dir)
}
