package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/bloops-games/undercover/internal/cache"
	"github.com/bloops-games/undercover/internal/database"
	"github.com/bloops-games/undercover/internal/database/roster/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T, c cache.Cache) *DB {
	t.Helper()

	ctx := context.Background()
	db, err := database.NewFromEnv(ctx, &database.Config{FilePath: filepath.Join(t.TempDir(), "roster.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(ctx) })

	return New(db, c)
}

func TestDB_StoreFetch(t *testing.T) {
	t.Parallel()

	lru, err := cache.NewLRU(8)
	require.NoError(t, err)

	for name, c := range map[string]cache.Cache{"cached": lru, "uncached": nil} {
		c := c
		t.Run(name, func(t *testing.T) {
			db := newTestDB(t, c)

			_, err := db.Fetch("friday")
			assert.True(t, errors.Is(err, ErrNotFound))

			r := model.Roster{Name: "Friday", Players: []string{"Ann", "Bob", "Cid"}, SavedAt: time.Now().UTC().Round(time.Second)}
			require.NoError(t, db.Store(r))

			got, err := db.Fetch(" friday ")
			require.NoError(t, err)
			assert.Equal(t, r.Players, got.Players)
			assert.Equal(t, "Friday", got.Name)
		})
	}
}

func TestDB_ListDelete(t *testing.T) {
	t.Parallel()

	lru, err := cache.NewLRU(8)
	require.NoError(t, err)
	db := newTestDB(t, lru)

	list, err := db.List()
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, db.Store(model.Roster{Name: "b", Players: []string{"x"}}))
	require.NoError(t, db.Store(model.Roster{Name: "a", Players: []string{"y"}}))
	assert.Error(t, db.Store(model.Roster{Name: "  "}))

	list, err = db.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].Name)

	require.NoError(t, db.Delete("A"))
	_, err = db.Fetch("a")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(db.Delete("a"), ErrNotFound))
}
