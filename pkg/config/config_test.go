package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 2, cfg.MinCCMajor)
	assert.Equal(t, 1, cfg.MinCCMinor)
	assert.Equal(t, 30, cfg.CacheTTLSeconds)
	assert.NotEmpty(t, cfg.HistoryDir)
}

func TestLoadCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	// The file should now exist with the defaults written out
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestLoadExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	content := []byte("log_level: debug\nmin_cc_major: 7\nmin_cc_minor: 0\npreferred_backend: cuda\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 7, cfg.MinCCMajor)
	assert.Equal(t, 0, cfg.MinCCMinor)
	assert.Equal(t, "cuda", cfg.PreferredBackend)

	// Unset fields keep their defaults
	assert.Equal(t, 30, cfg.CacheTTLSeconds)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: [broken"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	want := Config{
		LogLevel:         "info",
		PreferredBackend: "vulkan",
		MinCCMajor:       8,
		MinCCMinor:       6,
		HistoryDir:       "/tmp/history",
		CacheTTLSeconds:  5,
	}
	require.NoError(t, Save(want, path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want.PreferredBackend, got.PreferredBackend)
	assert.Equal(t, want.MinCCMajor, got.MinCCMajor)
	assert.Equal(t, want.MinCCMinor, got.MinCCMinor)
	assert.Equal(t, want.HistoryDir, got.HistoryDir)
}
