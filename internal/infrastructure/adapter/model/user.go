package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID            string    `gorm:"primaryKey;type:varchar(36)"`
	Username      string    `gorm:"uniqueIndex;not null;size:50"`
	Email         string    `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash  string    `gorm:"not null;size:255"`
	Role          string    `gorm:"not null;size:20;default:user"`
	WalletBalance int64     `gorm:"not null;default:0"` // Balance in cents
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
