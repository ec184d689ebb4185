package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromEnv(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, err := NewFromEnv(ctx, &Config{FilePath: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	assert.NoError(t, db.Close(ctx))

	_, err = NewFromEnv(ctx, &Config{FilePath: filepath.Join(t.TempDir(), "missing", "test.db")})
	assert.Error(t, err)
}
