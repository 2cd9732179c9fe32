package model

import (
	"time"
)

// Payout is the stored form of one prize distribution line
type Payout struct {
	Type     string `json:"type"`
	FromRank int    `json:"from_rank"`
	ToRank   int    `json:"to_rank"`
	Amount   int64  `json:"amount"`
}

// Contest represents the database model for contests
type Contest struct {
	ID                string    `gorm:"primaryKey;type:varchar(36)"`
	MatchID           string    `gorm:"not null;index:idx_contests_match_status,priority:1;type:varchar(36)"`
	Name              string    `gorm:"not null;size:100"`
	EntryFee          int64     `gorm:"not null;check:chk_contests_entry_fee,entry_fee >= 0"`
	PrizePool         int64     `gorm:"not null"`
	MaxUsers          int       `gorm:"not null;check:chk_contests_max_users,max_users >= 1"`
	JoinedUsers       int       `gorm:"not null;default:0"`
	Status            string    `gorm:"not null;size:20;index:idx_contests_match_status,priority:2"`
	PrizeDistribution []Payout  `gorm:"type:jsonb;serializer:json"`
	CreatedAt         time.Time `gorm:"not null"`

	Match Match `gorm:"foreignKey:MatchID;references:ID"`
}

// TableName specifies the table name for Contest
func (Contest) TableName() string {
	return "contests"
}

// ContestEntry represents the database model for contest entries.
// A user can hold only one entry per contest.
type ContestEntry struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	ContestID string    `gorm:"not null;uniqueIndex:uq_contest_entries_contest_user,priority:1;type:varchar(36)"`
	UserID    string    `gorm:"not null;uniqueIndex:uq_contest_entries_contest_user,priority:2;index;type:varchar(36)"`
	TeamID    string    `gorm:"not null;type:varchar(36)"`
	Rank      *int      `gorm:"null"`
	Winnings  int64     `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null"`

	Contest Contest `gorm:"foreignKey:ContestID;references:ID"`
	Team    Team    `gorm:"foreignKey:TeamID;references:ID"`
}

// TableName specifies the table name for ContestEntry
func (ContestEntry) TableName() string {
	return "contest_entries"
}
