package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCode(t *testing.T) {
	t.Parallel()

	for i := 0; i < 100; i++ {
		code := GenerateCode()
		assert.GreaterOrEqual(t, code, int64(0))
		assert.Less(t, code, int64(1<<20))
	}
}

func TestNoun(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "player", Noun(1, "player", "players"))
	assert.Equal(t, "players", Noun(0, "player", "players"))
	assert.Equal(t, "players", Noun(5, "player", "players"))
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "3:00", FormatDuration(3*time.Minute))
	assert.Equal(t, "0:05", FormatDuration(5*time.Second))
	assert.Equal(t, "1:30", FormatDuration(90*time.Second))
	assert.Equal(t, "0:00", FormatDuration(-time.Second))
}
