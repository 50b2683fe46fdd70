package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yzke/dlog/internal/config"
	"github.com/yzke/dlog/internal/store"
)

// testConfig builds a config pointing at a fresh database. newRootCmd
// binds the --db default to cfg.DBPath, so commands built from this
// config hit the temp database.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DBPath:       filepath.Join(t.TempDir(), "dlog.db"),
		DefaultLimit: 10,
	}
}

func openTestStore(t *testing.T, path string) *store.Store {
	t.Helper()
	s, err := store.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// chdirTemp switches into a fresh temp dir and returns its normalized
// form (TempDir can sit behind a symlink).
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	return resolved
}

func runCmd(t *testing.T, cfg *config.Config, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(cfg)
	cmd.SetArgs(args)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if stdin != "" {
		cmd.SetIn(bytes.NewBufferString(stdin))
	}

	err := cmd.Execute()
	return out.String(), err
}
