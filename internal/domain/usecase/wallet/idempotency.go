package wallet

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/persistence"
)

// IdempotencyHandler provides idempotency checking for deposits
type IdempotencyHandler struct {
	uow persistence.UnitOfWork
}

// NewIdempotencyHandler creates a new IdempotencyHandler
func NewIdempotencyHandler(uow persistence.UnitOfWork) *IdempotencyHandler {
	return &IdempotencyHandler{
		uow: uow,
	}
}

// CheckIdempotency checks if the user already recorded a transaction under key.
// Returns the transaction, a boolean indicating if it was found, and any error.
// An empty key never matches.
func (h *IdempotencyHandler) CheckIdempotency(
	ctx context.Context,
	userID string,
	key string,
) (*entity.Transaction, bool, error) {
	if key == "" {
		return nil, false, nil
	}

	txn, err := h.uow.GetTransactionRepository(ctx).FindByIdempotencyKey(ctx, userID, key)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check idempotency key: %w", err)
	}

	if txn == nil {
		return nil, false, nil
	}

	return txn, true, nil
}
