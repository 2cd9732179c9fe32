package entity

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
)

// UserRole distinguishes regular players from administrators
type UserRole string

// User roles
const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// Registration limits
const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MinPasswordLength = 6
)

// User represents a registered account and its wallet
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         UserRole
	balance      int64 // Wallet balance in cents (private, mutated only through the ledger)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a user with an empty wallet
func NewUser(
	id string,
	username string,
	email string,
	passwordHash string,
	role UserRole,
	timeProvider coreport.TimeProvider,
) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if id == "" {
		return nil, fmt.Errorf("%w: user id is required", errs.ErrInvalidRequest)
	}
	if len(username) < MinUsernameLength || len(username) > MaxUsernameLength {
		return nil, fmt.Errorf("%w: username must be between %d and %d characters",
			errs.ErrInvalidRequest, MinUsernameLength, MaxUsernameLength)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email address", errs.ErrInvalidRequest)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("%w: password hash is required", errs.ErrInvalidRequest)
	}
	if role != RoleUser && role != RoleAdmin {
		return nil, fmt.Errorf("%w: unknown role %q", errs.ErrInvalidRequest, role)
	}

	now := timeProvider.Now()
	return &User{
		ID:           id,
		Username:     username,
		Email:        strings.ToLower(email),
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// WalletBalance returns the balance in cents
func (u *User) WalletBalance() int64 {
	return u.balance
}

// FormattedBalance returns the balance as a string with 2 decimal places
func (u *User) FormattedBalance() string {
	return FormatAmount(u.balance)
}

// SetWalletBalance replaces the balance (repositories use it when hydrating a user)
func (u *User) SetWalletBalance(cents int64) {
	u.balance = cents
}

// CanAfford reports whether the wallet covers amount cents
func (u *User) CanAfford(amount int64) bool {
	return u.balance >= amount
}

// IsAdmin reports whether the user may run administrative operations
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
