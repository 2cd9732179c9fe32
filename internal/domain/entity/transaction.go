package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
	tport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
)

// TransactionType represents the reason a wallet balance changed
type TransactionType string

// Transaction types
const (
	TypeDeposit       TransactionType = "deposit"
	TypeContestEntry  TransactionType = "contest_entry"
	TypeContestRefund TransactionType = "contest_refund"
	TypeWinning       TransactionType = "winning"
	TypeWithdrawal    TransactionType = "withdrawal"
)

// TransactionStatus defines possible status values for a transaction
type TransactionStatus string

// TransactionStatus constants
const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

// Transaction is an append-only record of a single wallet movement
type Transaction struct {
	ID             string            // Unique identifier for the transaction
	UserID         string            // Owner of the wallet
	Type           TransactionType   // Reason for the movement
	Amount         int64             // Amount in cents, always positive
	Status         TransactionStatus // Status of the transaction
	ReferenceID    string            // Contest id, gateway charge id, ...
	Description    string            // Human readable description
	IdempotencyKey string            // Optional client supplied key (deposits)
	BalanceAfter   int64             // Wallet balance once this movement was applied
	CreatedAt      time.Time         // When the transaction was recorded
}

// TransactionOption is a function that configures a Transaction
type TransactionOption func(*Transaction)

// WithIdempotencyKey attaches a client supplied idempotency key
func WithIdempotencyKey(key string) TransactionOption {
	return func(t *Transaction) {
		t.IdempotencyKey = key
	}
}

// WithStatus overrides the default completed status
func WithStatus(status TransactionStatus) TransactionOption {
	return func(t *Transaction) {
		t.Status = status
	}
}

// NewTransaction creates a completed transaction with basic validation
func NewTransaction(
	id string,
	userID string,
	txType TransactionType,
	amount int64,
	referenceID string,
	description string,
	balanceAfter int64,
	timeProvider tport.TimeProvider,
	opts ...TransactionOption,
) (*Transaction, error) {
	if id == "" || userID == "" {
		return nil, fmt.Errorf("%w: transaction and user ids are required", errs.ErrInvalidRequest)
	}
	if !IsValidTransactionType(string(txType)) {
		return nil, fmt.Errorf("%w: unknown transaction type %s", errs.ErrInvalidRequest, txType)
	}
	if amount <= 0 {
		return nil, errs.ErrNegativeAmount
	}
	if balanceAfter < 0 {
		return nil, fmt.Errorf("%w: balance cannot go negative", errs.ErrInvalidAmount)
	}

	tx := &Transaction{
		ID:           id,
		UserID:       userID,
		Type:         txType,
		Amount:       amount,
		Status:       StatusCompleted,
		ReferenceID:  referenceID,
		Description:  description,
		BalanceAfter: balanceAfter,
		CreatedAt:    timeProvider.Now(),
	}
	for _, opt := range opts {
		opt(tx)
	}
	return tx, nil
}

// IsCredit returns true if this transaction increased the user's balance
func (t *Transaction) IsCredit() bool {
	switch t.Type {
	case TypeDeposit, TypeContestRefund, TypeWinning:
		return true
	}
	return false
}

// IsDebit returns true if this transaction decreased the user's balance
func (t *Transaction) IsDebit() bool {
	return !t.IsCredit()
}

// FormattedAmount returns the amount with 2 decimal places
func (t *Transaction) FormattedAmount() string {
	return FormatAmount(t.Amount)
}

// IsValidTransactionType validates if the transaction type is allowed
func IsValidTransactionType(txType string) bool {
	switch TransactionType(txType) {
	case TypeDeposit, TypeContestEntry, TypeContestRefund, TypeWinning, TypeWithdrawal:
		return true
	}
	return false
}
