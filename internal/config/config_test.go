package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledgerflow.yaml")

	cfg := Default()
	cfg.SourceDir = "ledgers"
	cfg.Strict = true
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ledgers", loaded.SourceDir)
	assert.True(t, loaded.Strict)
	assert.Equal(t, "500ms", loaded.Worker.PollInterval)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledgerflow.yaml")
	require.NoError(t, Save(path, Default()))

	t.Setenv("LEDGERFLOW_SOURCE_DIR", "/srv/ledgers")
	t.Setenv("LEDGERFLOW_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/ledgers", cfg.SourceDir)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "tmp", cfg.SourceDir)
	assert.Equal(t, "out", cfg.ReportDir)
	assert.False(t, cfg.Strict)
	assert.Equal(t, "ledgerflow.db", cfg.QueueDB)
}
