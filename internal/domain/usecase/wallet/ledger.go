package wallet

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/persistence"
)

// Ledger is the only writer of wallet balances. Every balance change is paired with exactly
// one completed transaction recording the balance it produced.
//
// All methods expect a transactional context obtained from the unit of work, so that the
// balance change and its transaction commit or roll back together with the caller's other writes.
type Ledger struct {
	uow          persistence.UnitOfWork
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewLedger creates a new Ledger
func NewLedger(
	uow persistence.UnitOfWork,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Ledger {
	return &Ledger{
		uow:          uow,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Debit takes amount cents from the wallet. The storage applies it as one conditional
// decrement, so a concurrent debit can never overdraw the wallet.
func (l *Ledger) Debit(
	txCtx context.Context,
	userID string,
	amount int64,
	txType entity.TransactionType,
	referenceID string,
	description string,
	opts ...entity.TransactionOption,
) (*entity.Transaction, error) {
	if amount <= 0 {
		return nil, errs.ErrNegativeAmount
	}

	newBalance, err := l.uow.GetUserRepository(txCtx).Debit(txCtx, userID, amount)
	if err != nil {
		if errs.IsInsufficientFundsError(err) {
			l.logger.Warn("Debit rejected", errs.LogFields(err))
		}
		return nil, err
	}

	return l.record(txCtx, userID, txType, amount, referenceID, description, newBalance, opts...)
}

// Credit adds amount cents to the wallet
func (l *Ledger) Credit(
	txCtx context.Context,
	userID string,
	amount int64,
	txType entity.TransactionType,
	referenceID string,
	description string,
	opts ...entity.TransactionOption,
) (*entity.Transaction, error) {
	if amount <= 0 {
		return nil, errs.ErrNegativeAmount
	}

	newBalance, err := l.uow.GetUserRepository(txCtx).Credit(txCtx, userID, amount)
	if err != nil {
		return nil, err
	}

	return l.record(txCtx, userID, txType, amount, referenceID, description, newBalance, opts...)
}

// ChargeEntryFee debits the contest entry fee
func (l *Ledger) ChargeEntryFee(txCtx context.Context, userID string, contest *entity.Contest) (*entity.Transaction, error) {
	return l.Debit(txCtx, userID, contest.EntryFee, entity.TypeContestEntry, contest.ID,
		fmt.Sprintf("Entry fee for contest: %s", contest.Name))
}

// Refund credits the contest entry fee back
func (l *Ledger) Refund(txCtx context.Context, userID string, contest *entity.Contest) (*entity.Transaction, error) {
	return l.Credit(txCtx, userID, contest.EntryFee, entity.TypeContestRefund, contest.ID,
		fmt.Sprintf("Refund for cancelled contest: %s", contest.Name))
}

func (l *Ledger) record(
	txCtx context.Context,
	userID string,
	txType entity.TransactionType,
	amount int64,
	referenceID string,
	description string,
	balanceAfter int64,
	opts ...entity.TransactionOption,
) (*entity.Transaction, error) {
	txn, err := entity.NewTransaction(
		l.idGenerator.NewID(),
		userID,
		txType,
		amount,
		referenceID,
		description,
		balanceAfter,
		l.timeProvider,
		opts...,
	)
	if err != nil {
		return nil, err
	}

	if err := l.uow.GetTransactionRepository(txCtx).Create(txCtx, txn); err != nil {
		return nil, err
	}

	l.logger.Debug("Wallet transaction recorded", map[string]any{
		"transaction_id": txn.ID,
		"user_id":        userID,
		"type":           string(txType),
		"amount":         txn.FormattedAmount(),
		"balance_after":  entity.FormatAmount(balanceAfter),
	})

	return txn, nil
}
