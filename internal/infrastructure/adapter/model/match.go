package model

import (
	"time"
)

// Match represents the database model for fixtures
type Match struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	Title     string    `gorm:"not null;size:200"`
	Slug      string    `gorm:"uniqueIndex;not null;size:255"`
	Team1     string    `gorm:"not null;size:100"`
	Team2     string    `gorm:"not null;size:100"`
	StartTime time.Time `gorm:"not null;index:idx_matches_status_start,priority:2"`
	Venue     string    `gorm:"size:200"`
	MatchType string    `gorm:"not null;size:10"`
	Status    string    `gorm:"not null;size:20;index:idx_matches_status_start,priority:1"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Match
func (Match) TableName() string {
	return "matches"
}
