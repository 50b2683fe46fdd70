package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.DefaultLimit)
	assert.Equal(t, "dlog.db", filepath.Base(cfg.DBPath))
	assert.Empty(t, cfg.Editor)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "db_path: /tmp/custom.db\neditor: nano\ndefault_limit: 25\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
	assert.Equal(t, "nano", cfg.Editor)
	assert.Equal(t, 25, cfg.DefaultLimit)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("editor: hx\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "hx", cfg.Editor)
	assert.Equal(t, 10, cfg.DefaultLimit)
	assert.NotEmpty(t, cfg.DBPath)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: [broken\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
