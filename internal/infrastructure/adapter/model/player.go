package model

import (
	"github.com/shopspring/decimal"
)

// Player represents the database model for match players
type Player struct {
	ID            string          `gorm:"primaryKey;type:varchar(36)"`
	MatchID       string          `gorm:"not null;index;type:varchar(36)"`
	Name          string          `gorm:"not null;size:100"`
	Role          string          `gorm:"not null;size:20"`
	Team          string          `gorm:"not null;size:100"`
	BasePrice     decimal.Decimal `gorm:"not null;type:numeric(5,2)"`
	CurrentPoints decimal.Decimal `gorm:"not null;type:numeric(8,2);default:0"`
	ImageURL      string          `gorm:"size:500"`

	Match Match `gorm:"foreignKey:MatchID;references:ID"`
}

// TableName specifies the table name for Player
func (Player) TableName() string {
	return "players"
}
