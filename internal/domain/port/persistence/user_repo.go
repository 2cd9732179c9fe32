package persistence

import (
	"context"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// Create creates a new user with an empty wallet
	//
	// Possible errors:
	// - ErrDuplicateUser: If the username or email is already taken
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// GetByUsername retrieves a user by username, used for login
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has that username
	// - ErrDatabaseConnection: If database connection fails
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// ExistsByUsernameOrEmail checks whether either identifier is already registered
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	// Debit atomically subtracts amount cents when the balance covers it and returns the new balance.
	// The check and the update are one conditional statement, so concurrent debits can never
	// push the balance below zero.
	//
	// Possible errors:
	// - ErrUserNotFound: If the user doesn't exist
	// - InsufficientFundsError: If the balance is lower than amount
	// - ErrConcurrentUpdate: If the storage aborted the statement due to a conflict
	Debit(ctx context.Context, userID string, amount int64) (int64, error)

	// Credit atomically adds amount cents and returns the new balance
	//
	// Possible errors:
	// - ErrUserNotFound: If the user doesn't exist
	// - ErrConcurrentUpdate: If the storage aborted the statement due to a conflict
	Credit(ctx context.Context, userID string, amount int64) (int64, error)
}
