package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Team represents the database model for fantasy teams
type Team struct {
	ID          string          `gorm:"primaryKey;type:varchar(36)"`
	UserID      string          `gorm:"not null;index;type:varchar(36)"`
	MatchID     string          `gorm:"not null;index;type:varchar(36)"`
	TeamName    string          `gorm:"not null;size:100"`
	TotalPoints decimal.Decimal `gorm:"not null;type:numeric(10,2);default:0"`
	CreatedAt   time.Time       `gorm:"not null"`

	Players []TeamPlayer `gorm:"foreignKey:TeamID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Team
func (Team) TableName() string {
	return "teams"
}

// TeamPlayer is one roster slot. Position keeps the selection order.
type TeamPlayer struct {
	TeamID        string `gorm:"primaryKey;type:varchar(36)"`
	PlayerID      string `gorm:"primaryKey;type:varchar(36)"`
	Position      int    `gorm:"not null"`
	IsCaptain     bool   `gorm:"not null;default:false"`
	IsViceCaptain bool   `gorm:"not null;default:false"`

	Player Player `gorm:"foreignKey:PlayerID;references:ID"`
}

// TableName specifies the table name for TeamPlayer
func (TeamPlayer) TableName() string {
	return "team_players"
}
