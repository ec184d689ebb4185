package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/bloops-games/undercover/internal/database"
	"github.com/bloops-games/undercover/internal/database/matchstate/model"
	"github.com/bloops-games/undercover/internal/undercover/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	ctx := context.Background()
	db, err := database.NewFromEnv(ctx, &database.Config{FilePath: filepath.Join(t.TempDir(), "state.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(ctx) })

	return New(db)
}

func TestDB_Empty(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)

	_, err := db.FetchAll()
	assert.True(t, errors.Is(err, ErrEntryNotFound))

	_, err = db.Latest()
	assert.True(t, errors.Is(err, ErrEntryNotFound))

	assert.True(t, errors.Is(db.Clean(), ErrBucketNotFound))
}

func TestDB_AddLatestClean(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)

	// Given: two saved sittings
	older := match.NewSession()
	older.Code = 1
	older.Players = []match.Player{{ID: "a", Name: "Ann", Alive: true}}

	newer := match.NewSession()
	newer.Code = 2
	newer.Phase = match.PhaseVote
	newer.WordPair = match.WordPair{Civilian: "Cat", Undercover: "Lynx"}
	newer.Players = []match.Player{
		{ID: "b", Name: "Bob", Role: match.RoleUndercover, Word: "Lynx", Alive: true},
		{ID: "c", Name: "Cid", Role: match.RoleMrWhite, Word: match.PlaceholderWord},
	}

	require.NoError(t, db.Add(model.State{Code: older.Code, SavedAt: time.Now().Add(-time.Hour), Session: older}))
	require.NoError(t, db.Add(model.State{Code: newer.Code, SavedAt: time.Now(), Session: newer}))

	// When: the latest one is fetched
	all, err := db.FetchAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	latest, err := db.Latest()
	require.NoError(t, err)

	// Then: the newer session comes back intact
	assert.Equal(t, newer, latest.Session)
	assert.True(t, latest.Resumable())

	require.NoError(t, db.Clean())
	_, err = db.FetchAll()
	assert.True(t, errors.Is(err, ErrEntryNotFound))
}
