package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/model"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:             transaction.ID,
		UserID:         transaction.UserID,
		Type:           string(transaction.Type),
		Amount:         transaction.Amount,
		Status:         string(transaction.Status),
		ReferenceID:    transaction.ReferenceID,
		Description:    transaction.Description,
		IdempotencyKey: transaction.IdempotencyKey,
		BalanceAfter:   transaction.BalanceAfter,
		CreatedAt:      transaction.CreatedAt,
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:             m.ID,
		UserID:         m.UserID,
		Type:           entity.TransactionType(m.Type),
		Amount:         m.Amount,
		Status:         entity.TransactionStatus(m.Status),
		ReferenceID:    m.ReferenceID,
		Description:    m.Description,
		IdempotencyKey: m.IdempotencyKey,
		BalanceAfter:   m.BalanceAfter,
		CreatedAt:      m.CreatedAt,
	}
}

// Create saves a new transaction
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := r.entityToModel(transaction)

	result := r.db.WithContext(ctx).Omit("User").Create(&transactionModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate idempotency key", map[string]any{
				"transaction_id":  transaction.ID,
				"user_id":         transaction.UserID,
				"idempotency_key": transaction.IdempotencyKey,
			})
			return errs.ErrDuplicateIdempotency
		}
		return storageError(r.errorClassifier, r.logger, "creating transaction", result.Error, nil,
			map[string]any{"transaction_id": transaction.ID, "user_id": transaction.UserID})
	}

	r.logger.Debug("Transaction created successfully", map[string]any{
		"transaction_id": transaction.ID,
		"user_id":        transaction.UserID,
		"type":           string(transaction.Type),
	})
	return nil
}

// ListByUser returns the newest transactions of a user
func (r *TransactionRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Transaction, error) {
	var models []model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, storageError(r.errorClassifier, r.logger, "listing transactions", result.Error, nil,
			map[string]any{"user_id": userID})
	}

	transactions := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, r.modelToEntity(&models[i]))
	}
	return transactions, nil
}

// FindByIdempotencyKey returns the transaction recorded under key, or nil
func (r *TransactionRepository) FindByIdempotencyKey(ctx context.Context, userID, key string) (*entity.Transaction, error) {
	var models []model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND idempotency_key = ?", userID, key).
		Limit(1).
		Find(&models)
	if result.Error != nil {
		return nil, storageError(r.errorClassifier, r.logger, "finding transaction by idempotency key", result.Error, nil,
			map[string]any{"user_id": userID, "idempotency_key": key})
	}

	if len(models) == 0 {
		return nil, nil
	}
	return r.modelToEntity(&models[0]), nil
}
