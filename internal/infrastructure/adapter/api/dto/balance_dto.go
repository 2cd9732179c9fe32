package dto

import "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"

// BalanceResponse represents the API response for a user's balance
type BalanceResponse struct {
	Balance string `json:"balance"`
}

// AddFundsRequest is the body of POST /wallet/add-funds.
// The idempotency key may also be sent in the Idempotency-Key header.
type AddFundsRequest struct {
	Amount          Amount `json:"amount" binding:"required"`
	PaymentMethodID string `json:"payment_method_id"`
	IdempotencyKey  string `json:"idempotency_key"`
}

// AddFundsResponse describes a completed deposit
type AddFundsResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	NewBalance    string `json:"new_balance"`
	TransactionID string `json:"transaction_id"`
	Replayed      bool   `json:"replayed,omitempty"`
}

// NewBalanceResponse renders cents as a two decimal string
func NewBalanceResponse(cents int64) BalanceResponse {
	return BalanceResponse{Balance: entity.FormatAmount(cents)}
}
