package model

import (
	"time"
)

// Transaction represents the database model for wallet transactions.
// The partial unique index on (user_id, idempotency_key) is created by the migration.
type Transaction struct {
	ID             string    `gorm:"primaryKey;type:varchar(36)"`
	UserID         string    `gorm:"not null;index:idx_transactions_user_created,priority:1;type:varchar(36)"`
	Type           string    `gorm:"not null;size:30"`
	Amount         int64     `gorm:"not null;check:chk_transactions_amount,amount > 0"`
	Status         string    `gorm:"not null;size:20"`
	ReferenceID    string    `gorm:"size:255"`
	Description    string    `gorm:"type:text"`
	IdempotencyKey string    `gorm:"size:255;not null;default:''"`
	BalanceAfter   int64     `gorm:"not null"`
	CreatedAt      time.Time `gorm:"not null;index:idx_transactions_user_created,priority:2,sort:desc"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
