package persistence

import (
	"context"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
)

// TransactionRepository stores the append-only wallet history
type TransactionRepository interface {
	// Create saves a new transaction
	//
	// Possible errors:
	// - ErrDuplicateIdempotency: If the user already used the transaction's idempotency key
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// ListByUser returns up to limit transactions of a user, newest first
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Transaction, error)

	// FindByIdempotencyKey returns the transaction recorded under key for the user.
	// It returns nil and no error when the key has not been used.
	FindByIdempotencyKey(ctx context.Context, userID, key string) (*entity.Transaction, error)
}
