package main

import (
	"testing"
	"time"

	"github.com/bloops-games/undercover/internal/undercover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCmd_FlagsOverrideEnv(t *testing.T) {
	t.Parallel()

	// Given: values read from the environment
	config := undercover.Config{DiscussionTime: 3 * time.Minute, CacheSize: 64, Restore: true}
	cmd := newCmd(&config)

	// When: some of them are given as flags
	require.NoError(t, cmd.ParseFlags([]string{"--discussion_time", "90s", "--restore=false", "-w", "words.yaml"}))

	// Then: flags win, the rest keeps the environment value
	assert.Equal(t, 90*time.Second, config.DiscussionTime)
	assert.False(t, config.Restore)
	assert.Equal(t, "words.yaml", config.WordsFile)
	assert.Equal(t, 64, config.CacheSize)
}

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	c, err := loadCatalog("")
	require.NoError(t, err)
	assert.NotZero(t, c.Len())

	_, err = loadCatalog("missing.yaml")
	assert.Error(t, err)
}
