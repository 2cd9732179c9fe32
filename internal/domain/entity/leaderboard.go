package entity

import (
	"sort"

	"github.com/shopspring/decimal"
)

// LeaderboardEntry is one ranked participant
type LeaderboardEntry struct {
	Rank        int
	UserID      string
	Username    string
	TeamID      string
	TeamName    string
	TotalPoints decimal.Decimal
	Winnings    int64
}

// Leaderboard is the ranked view of a contest
type Leaderboard struct {
	ContestID    string
	MatchID      string
	Entries      []LeaderboardEntry
	TotalEntries int
	PrizePool    int64
}

// RankEntries orders entries by points descending and assigns ranks 1..n.
// The sort is stable, so tied entries keep the order they were given in.
func RankEntries(entries []LeaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalPoints.GreaterThan(entries[j].TotalPoints)
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
}
