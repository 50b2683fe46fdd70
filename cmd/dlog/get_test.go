package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yzke/dlog/internal/domain"
)

func TestGetCmd(t *testing.T) {
	cfg := testConfig(t)
	s := openTestStore(t, cfg.DBPath)

	_, err := s.Append("/proj", "rewired the cache layer", "perf")
	require.NoError(t, err)
	_, err = s.Append("/proj/sub", "child entry", "")
	require.NoError(t, err)

	out, err := runCmd(t, cfg, "", "get", "/proj")
	require.NoError(t, err)
	assert.Contains(t, out, "rewired the cache layer")
	assert.Contains(t, out, "Tags: perf")
	assert.NotContains(t, out, "child entry")
}

func TestGetCmdRecursiveShowsDirectory(t *testing.T) {
	cfg := testConfig(t)
	s := openTestStore(t, cfg.DBPath)

	_, err := s.Append("/proj/sub", "child entry", "")
	require.NoError(t, err)

	out, err := runCmd(t, cfg, "", "get", "-r", "/proj")
	require.NoError(t, err)
	assert.Contains(t, out, "child entry")
	assert.Contains(t, out, "/proj/sub")
}

func TestGetCmdTagFilter(t *testing.T) {
	cfg := testConfig(t)
	s := openTestStore(t, cfg.DBPath)

	_, err := s.Append("/proj", "tagged test", "test")
	require.NoError(t, err)
	_, err = s.Append("/proj", "tagged testing", "testing")
	require.NoError(t, err)

	out, err := runCmd(t, cfg, "", "get", "-t", "test", "/proj")
	require.NoError(t, err)
	assert.Contains(t, out, "tagged test")
	assert.NotContains(t, out, "tagged testing")
}

func TestGetCmdNoResults(t *testing.T) {
	cfg := testConfig(t)

	out, err := runCmd(t, cfg, "", "get", "/nowhere")
	require.NoError(t, err)
	assert.Contains(t, out, "No logs found.")
}

func TestGetCmdBadDateFailsFast(t *testing.T) {
	cfg := testConfig(t)

	_, err := runCmd(t, cfg, "", "get", "--date", "15-01-2024", "/proj")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetCmdDateFilter(t *testing.T) {
	cfg := testConfig(t)
	s := openTestStore(t, cfg.DBPath)

	_, err := s.Append("/proj", "today's note", "")
	require.NoError(t, err)

	out, err := runCmd(t, cfg, "", "get", "--date", "1999-01-01", "/proj")
	require.NoError(t, err)
	assert.Contains(t, out, "No logs found.")
}
