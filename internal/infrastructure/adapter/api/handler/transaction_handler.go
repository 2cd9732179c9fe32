package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/api/dto"
)

// IdempotencyKeyHeader lets clients retry a deposit safely
const IdempotencyKeyHeader = "Idempotency-Key"

// TransactionHandler handles wallet requests of the signed-in user
type TransactionHandler struct {
	walletUseCase usecase.WalletUseCase
	logger        coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(walletUseCase usecase.WalletUseCase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		walletUseCase: walletUseCase,
		logger:        logger,
	}
}

// GetBalance handles GET /wallet/balance
func (h *TransactionHandler) GetBalance(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	balance, err := h.walletUseCase.GetBalance(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, "get balance", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBalanceResponse(balance))
}

// AddFunds handles POST /wallet/add-funds
func (h *TransactionHandler) AddFunds(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.AddFundsRequest
	if !bindJSON(c, &req) {
		return
	}

	key := c.GetHeader(IdempotencyKeyHeader)
	if key == "" {
		key = req.IdempotencyKey
	}

	result, err := h.walletUseCase.AddFunds(c.Request.Context(), user.ID, usecase.AddFundsInput{
		Amount:          req.Amount.String(),
		PaymentMethodID: req.PaymentMethodID,
		IdempotencyKey:  key,
	})
	if err != nil {
		respondError(c, h.logger, "add funds", err)
		return
	}

	c.JSON(http.StatusOK, dto.AddFundsResponse{
		Success:       true,
		Message:       "Funds added successfully",
		NewBalance:    entity.FormatAmount(result.NewBalance),
		TransactionID: result.TransactionID,
		Replayed:      result.Replayed,
	})
}

// ListTransactions handles GET /transactions?limit=
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	// An unparsable limit falls back to the default page size
	limit, _ := strconv.Atoi(c.Query("limit"))

	txns, err := h.walletUseCase.ListTransactions(c.Request.Context(), user.ID, limit)
	if err != nil {
		respondError(c, h.logger, "list transactions", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionListResponse(txns))
}
