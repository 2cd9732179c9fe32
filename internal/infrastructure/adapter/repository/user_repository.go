package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/model"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	user := &entity.User{
		ID:           userModel.ID,
		Username:     userModel.Username,
		Email:        userModel.Email,
		PasswordHash: userModel.PasswordHash,
		Role:         entity.UserRole(userModel.Role),
		CreatedAt:    userModel.CreatedAt,
		UpdatedAt:    userModel.UpdatedAt,
	}
	user.SetWalletBalance(userModel.WalletBalance)
	return user
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID string) error {
	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Duplicate user operation", map[string]any{
			"user_id": userID,
		})
		return errs.ErrDuplicateUser
	}
	return storageError(r.errorClassifier, r.logger, operation, err, errs.ErrUserNotFound,
		map[string]any{"user_id": userID})
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}
	return r.modelToEntity(&userModel), nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by username", result.Error, username)
	}
	return r.modelToEntity(&userModel), nil
}

// ExistsByUsernameOrEmail checks whether either identifier is taken
func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count)
	if result.Error != nil {
		return false, r.handleDatabaseError("checking user uniqueness", result.Error, username)
	}
	return count > 0, nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		PasswordHash:  user.PasswordHash,
		Role:          string(user.Role),
		WalletBalance: user.WalletBalance(),
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}

	if result := r.db.WithContext(ctx).Create(&userModel); result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, user.ID)
	}

	r.logger.Info("User created successfully", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     string(user.Role),
	})
	return nil
}

// Debit subtracts amount with a single conditional UPDATE. The WHERE clause refuses to
// overdraw, and the CHECK constraint on wallet_balance backs it up.
func (r *UserRepository) Debit(ctx context.Context, userID string, amount int64) (int64, error) {
	var balances []int64
	result := r.db.WithContext(ctx).Raw(
		`UPDATE users SET wallet_balance = wallet_balance - ?, updated_at = ?
		 WHERE id = ? AND wallet_balance >= ?
		 RETURNING wallet_balance`,
		amount, r.timeProvider.Now(), userID, amount,
	).Scan(&balances)
	if result.Error != nil {
		return 0, r.handleDatabaseError("debiting wallet", result.Error, userID)
	}

	if len(balances) == 0 {
		return 0, r.insufficientFunds(ctx, userID, amount)
	}
	return balances[0], nil
}

// Credit adds amount with a single UPDATE
func (r *UserRepository) Credit(ctx context.Context, userID string, amount int64) (int64, error) {
	var balances []int64
	result := r.db.WithContext(ctx).Raw(
		`UPDATE users SET wallet_balance = wallet_balance + ?, updated_at = ?
		 WHERE id = ?
		 RETURNING wallet_balance`,
		amount, r.timeProvider.Now(), userID,
	).Scan(&balances)
	if result.Error != nil {
		return 0, r.handleDatabaseError("crediting wallet", result.Error, userID)
	}

	if len(balances) == 0 {
		return 0, errs.ErrUserNotFound
	}
	return balances[0], nil
}

// insufficientFunds tells a missing user apart from a short balance after a refused debit
func (r *UserRepository) insufficientFunds(ctx context.Context, userID string, amount int64) error {
	var userModel model.User
	result := r.db.WithContext(ctx).Select("id", "wallet_balance").Where("id = ?", userID).First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return errs.ErrUserNotFound
		}
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return errs.NewInsufficientFundsError(userID, entity.FormatAmount(amount), entity.FormatAmount(userModel.WalletBalance))
}
