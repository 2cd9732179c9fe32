package usecase

import (
	"context"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
)

// AddFundsInput is a deposit request. Amount is a decimal string.
type AddFundsInput struct {
	Amount          string
	PaymentMethodID string
	IdempotencyKey  string
}

// AddFundsResult describes a completed deposit
type AddFundsResult struct {
	NewBalance    int64
	TransactionID string
	// Replayed is true when the idempotency key matched an earlier deposit
	Replayed bool
}

// WalletUseCase defines wallet operations exposed to users
type WalletUseCase interface {
	// GetBalance returns the balance in cents
	GetBalance(ctx context.Context, userID string) (int64, error)
	AddFunds(ctx context.Context, userID string, input AddFundsInput) (*AddFundsResult, error)
	// ListTransactions returns the newest transactions first; limit <= 0 uses the default
	ListTransactions(ctx context.Context, userID string, limit int) ([]*entity.Transaction, error)
}
