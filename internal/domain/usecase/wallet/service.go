package wallet

import (
	"context"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/usecase"
)

// Transaction history page sizes
const (
	DefaultTransactionLimit = 100
	MaxTransactionLimit     = 500
)

// Simulated payment gateway
const (
	gatewayReferencePrefix = "stripe_sim_"
	depositDescription     = "Wallet deposit via Stripe"
)

// Service implements the wallet use cases on top of the Ledger
type Service struct {
	uow                persistence.UnitOfWork
	ledger             *Ledger
	validator          *DepositValidator
	idempotencyHandler *IdempotencyHandler
	idGenerator        coreport.IDGenerator
	logger             coreport.Logger
}

var _ usecase.WalletUseCase = (*Service)(nil)

// NewService creates a new wallet service
func NewService(
	uow persistence.UnitOfWork,
	ledger *Ledger,
	idGenerator coreport.IDGenerator,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:                uow,
		ledger:             ledger,
		validator:          NewDepositValidator(),
		idempotencyHandler: NewIdempotencyHandler(uow),
		idGenerator:        idGenerator,
		logger:             logger,
	}
}

// GetBalance returns the wallet balance in cents
func (s *Service) GetBalance(ctx context.Context, userID string) (int64, error) {
	user, err := s.uow.GetUserRepository(ctx).GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return user.WalletBalance(), nil
}

// AddFunds simulates a gateway charge and credits the wallet. A repeated idempotency key
// returns the original deposit instead of crediting twice.
func (s *Service) AddFunds(ctx context.Context, userID string, input usecase.AddFundsInput) (*usecase.AddFundsResult, error) {
	amount, err := s.validator.ValidateDeposit(input.Amount, input.PaymentMethodID, input.IdempotencyKey)
	if err != nil {
		return nil, err
	}

	if existing, found, err := s.idempotencyHandler.CheckIdempotency(ctx, userID, input.IdempotencyKey); err != nil {
		return nil, err
	} else if found {
		return s.replay(existing), nil
	}

	reference := gatewayReferencePrefix + s.idGenerator.NewID()

	var txn *entity.Transaction
	err = s.uow.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error
		txn, err = s.ledger.Credit(txCtx, userID, amount, entity.TypeDeposit, reference, depositDescription,
			entity.WithIdempotencyKey(input.IdempotencyKey))
		return err
	})
	if err != nil {
		// A concurrent request with the same key won the insert
		if input.IdempotencyKey != "" && errs.IsConflictError(err) {
			if existing, found, checkErr := s.idempotencyHandler.CheckIdempotency(ctx, userID, input.IdempotencyKey); checkErr == nil && found {
				return s.replay(existing), nil
			}
		}
		s.logger.Error("Deposit failed", map[string]any{
			"user_id": userID,
			"amount":  entity.FormatAmount(amount),
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Wallet deposit completed", map[string]any{
		"user_id":        userID,
		"transaction_id": txn.ID,
		"amount":         txn.FormattedAmount(),
		"new_balance":    entity.FormatAmount(txn.BalanceAfter),
		"reference_id":   reference,
	})

	return &usecase.AddFundsResult{
		NewBalance:    txn.BalanceAfter,
		TransactionID: txn.ID,
	}, nil
}

// ListTransactions returns the user's history, newest first
func (s *Service) ListTransactions(ctx context.Context, userID string, limit int) ([]*entity.Transaction, error) {
	if limit <= 0 {
		limit = DefaultTransactionLimit
	}
	if limit > MaxTransactionLimit {
		limit = MaxTransactionLimit
	}
	return s.uow.GetTransactionRepository(ctx).ListByUser(ctx, userID, limit)
}

func (s *Service) replay(txn *entity.Transaction) *usecase.AddFundsResult {
	s.logger.Info("Replaying idempotent deposit", map[string]any{
		"user_id":         txn.UserID,
		"transaction_id":  txn.ID,
		"idempotency_key": txn.IdempotencyKey,
	})
	return &usecase.AddFundsResult{
		NewBalance:    txn.BalanceAfter,
		TransactionID: txn.ID,
		Replayed:      true,
	}
}
