package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRankEntries(t *testing.T) {
	t.Run("Ties keep input order", func(t *testing.T) {
		entries := []LeaderboardEntry{
			{TeamID: "t1", TotalPoints: decimal.NewFromInt(30)},
			{TeamID: "t2", TotalPoints: decimal.NewFromInt(50)},
			{TeamID: "t3", TotalPoints: decimal.NewFromInt(50)},
			{TeamID: "t4", TotalPoints: decimal.NewFromInt(10)},
		}

		RankEntries(entries)

		ranks := map[string]int{}
		for _, e := range entries {
			ranks[e.TeamID] = e.Rank
		}
		assert.Equal(t, map[string]int{"t1": 3, "t2": 1, "t3": 2, "t4": 4}, ranks)
		assert.Equal(t, "t2", entries[0].TeamID)
		assert.Equal(t, "t3", entries[1].TeamID)
	})

	t.Run("Fractional points", func(t *testing.T) {
		entries := []LeaderboardEntry{
			{TeamID: "a", TotalPoints: decimal.RequireFromString("10.5")},
			{TeamID: "b", TotalPoints: decimal.RequireFromString("10.75")},
		}

		RankEntries(entries)

		assert.Equal(t, "b", entries[0].TeamID)
		assert.Equal(t, 1, entries[0].Rank)
		assert.Equal(t, 2, entries[1].Rank)
	})

	t.Run("Empty", func(t *testing.T) {
		var entries []LeaderboardEntry
		RankEntries(entries)
		assert.Empty(t, entries)
	})
}
