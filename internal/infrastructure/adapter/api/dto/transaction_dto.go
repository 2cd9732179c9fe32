package dto

import (
	"time"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
)

// TransactionResponse is one wallet movement
type TransactionResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Type           string    `json:"type"`
	Amount         string    `json:"amount"`
	Status         string    `json:"status"`
	ReferenceID    string    `json:"reference_id,omitempty"`
	Description    string    `json:"description,omitempty"`
	IdempotencyKey string    `json:"idempotency_key,omitempty"`
	BalanceAfter   string    `json:"balance_after"`
	CreatedAt      time.Time `json:"created_at"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// NewTransactionListResponse converts wallet history
func NewTransactionListResponse(txns []*entity.Transaction) TransactionListResponse {
	out := TransactionListResponse{Transactions: make([]TransactionResponse, 0, len(txns))}
	for _, t := range txns {
		out.Transactions = append(out.Transactions, TransactionResponse{
			ID:             t.ID,
			UserID:         t.UserID,
			Type:           string(t.Type),
			Amount:         t.FormattedAmount(),
			Status:         string(t.Status),
			ReferenceID:    t.ReferenceID,
			Description:    t.Description,
			IdempotencyKey: t.IdempotencyKey,
			BalanceAfter:   entity.FormatAmount(t.BalanceAfter),
			CreatedAt:      t.CreatedAt,
		})
	}
	return out
}
