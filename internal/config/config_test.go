package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	cfg := &Config{}
	require.NoError(t, cfg.Set("db_path", " /tmp/h.db "))
	require.NoError(t, cfg.Set("log_level", "DEBUG"))
	require.NoError(t, cfg.SaveTo(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "/tmp/h.db")
	assert.NotContains(t, string(data), "log_path")

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/h.db", loaded.DBPath)
	assert.Equal(t, "debug", loaded.LogLevel)
}

func TestLoadFromInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("db_path = [unterminated"), 0o644))
	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestGetSetValidation(t *testing.T) {
	cfg := &Config{}

	assert.Error(t, cfg.Set("colour", "red"))
	assert.Error(t, cfg.Set("log_level", "loud"))
	_, err := cfg.Get("colour")
	assert.Error(t, err)

	require.NoError(t, cfg.Set("log_path", "/var/log/hc.log"))
	v, err := cfg.Get("log_path")
	require.NoError(t, err)
	assert.Equal(t, "/var/log/hc.log", v)

	assert.Equal(t, []string{"db_path", "log_level", "log_path"}, ValidKeys())
}
