package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yzke/dlog/internal/store"
)

func TestLogCmdMessage(t *testing.T) {
	cfg := testConfig(t)
	dir := chdirTemp(t)

	out, err := runCmd(t, cfg, "", "log", "-m", "wired up the payment webhook", "-t", "feature,payments")
	require.NoError(t, err)
	assert.Contains(t, out, "recorded")

	s := openTestStore(t, cfg.DBPath)
	entries, err := s.Fetch(store.Filter{Dir: dir})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "wired up the payment webhook", entries[0].Content)
	assert.Equal(t, "feature,payments", entries[0].Tags)
	assert.Equal(t, dir, entries[0].Directory)
}

func TestLogCmdWhitespaceOnlySkipped(t *testing.T) {
	cfg := testConfig(t)
	dir := chdirTemp(t)

	_, err := runCmd(t, cfg, "", "log", "-m", "   \n\t")
	require.NoError(t, err)

	s := openTestStore(t, cfg.DBPath)
	entries, err := s.Fetch(store.Filter{Dir: dir})
	require.NoError(t, err)
	assert.Empty(t, entries)
}
