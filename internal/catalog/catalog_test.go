package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bloops-games/undercover/internal/undercover/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"Food", "Animals", "Places", "Objects", "Jobs", "Sports"}, c.Categories())
	assert.Equal(t, 48, c.Len())

	pairs, ok := c.Pairs("Food")
	require.True(t, ok)
	assert.Equal(t, match.WordPair{Civilian: "Pizza", Undercover: "Burger"}, pairs[0])

	_, ok = c.Pairs("Space")
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		err  error
	}{
		{name: "empty", doc: "categories: []", err: ErrEmpty},
		{name: "one word", doc: "categories:\n  - name: A\n    pairs:\n      - [x]\n", err: ErrInvalidPair},
		{name: "blank word", doc: "categories:\n  - name: A\n    pairs:\n      - [x, ' ']\n", err: ErrInvalidPair},
		{name: "reserved name", doc: "categories:\n  - name: all\n    pairs: []\n", err: ErrCategory},
		{name: "duplicate", doc: "categories:\n  - name: A\n  - name: A\n", err: ErrCategory},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, tc.err)
		})
	}

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("categories: {"))
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "words.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories:\n  - name: Colors\n    pairs:\n      - [Red, Pink]\n"), 0600))

	c, err := Load(path)
	require.NoError(t, err)

	name, ok := c.Lookup(" colors ")
	require.True(t, ok)
	assert.Equal(t, "Colors", name)

	pairs, ok := c.Pairs(name)
	require.True(t, ok)
	assert.Equal(t, []match.WordPair{{Civilian: "Red", Undercover: "Pink"}}, pairs)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestCatalog_DrivesEngine(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)

	e := match.NewEngine(c)
	require.True(t, e.EnterSetup())
	for i := 0; i < 4; i++ {
		require.True(t, e.AddPlayer(""))
	}
	category := "Sports"
	require.True(t, e.UpdateSettings(match.SettingsPatch{Category: &category}))
	require.True(t, e.StartGame())

	sports, _ := c.Pairs("Sports")
	assert.Contains(t, sports, e.Snapshot().WordPair)
}
