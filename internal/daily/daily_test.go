package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/rusty-dusty/internal/game"
)

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	// 2025-03-02 05:00 at +10 is still March 1st in UTC.
	ts := time.Date(2025, 3, 2, 5, 0, 0, 0, loc)
	assert.Equal(t, "2025-03-01", DateKey(ts))
}

func TestNumber_StableAndInRange(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	first := Number(day, "salt", 1, 100)
	for i := 0; i < 5; i++ {
		later := day.Add(time.Duration(i) * 3 * time.Hour)
		require.Equal(t, first, Number(later, "salt", 1, 100))
	}
	for d := 0; d < 365; d++ {
		n := Number(day.AddDate(0, 0, d), "salt", 1, 100)
		require.GreaterOrEqual(t, n, 1)
		require.LessOrEqual(t, n, 100)
	}
}

func TestNumber_SaltMatters(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	seen := map[int]bool{}
	for _, salt := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		seen[Number(day, salt, 1, 100)] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestNumber_EmptySpan(t *testing.T) {
	assert.Equal(t, 5, Number(time.Now(), "x", 5, 4))
}

func TestSource_FeedsGame(t *testing.T) {
	day := time.Date(2024, 12, 24, 12, 0, 0, 0, time.UTC)
	src := Source{Salt: "xmas", Now: func() time.Time { return day }}

	g := game.New(src)
	assert.Equal(t, Number(day, "xmas", game.MinNumber, game.MaxNumber), g.SecretNumber())
}
