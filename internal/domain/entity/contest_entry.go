package entity

import "time"

// ContestEntry records that a user joined a contest with one of their teams.
// A user holds at most one entry per contest.
type ContestEntry struct {
	ID        string
	ContestID string
	UserID    string
	TeamID    string
	Rank      *int
	Winnings  int64 // Cents
	CreatedAt time.Time
}

// NewContestEntry creates an unranked entry
func NewContestEntry(id, contestID, userID, teamID string, now time.Time) *ContestEntry {
	return &ContestEntry{
		ID:        id,
		ContestID: contestID,
		UserID:    userID,
		TeamID:    teamID,
		CreatedAt: now,
	}
}

// MyContest is one joined contest as seen by its participant
type MyContest struct {
	Contest *Contest
	Match   *Match
	Entry   *ContestEntry
	Team    *Team
}
