package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
)

// AuthResult is returned after a successful registration or login
type AuthResult struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
	User        *entity.User
}

// AuthUseCase defines account operations
type AuthUseCase interface {
	// Register creates a regular user and signs them in
	Register(ctx context.Context, username, email, password string) (*AuthResult, error)

	// Login checks credentials and issues a new access token
	Login(ctx context.Context, username, password string) (*AuthResult, error)

	// Profile returns the current state of a user, including the wallet balance
	Profile(ctx context.Context, userID string) (*entity.User, error)
}

// Authenticator resolves a bearer token into the user it was issued to
type Authenticator interface {
	// Authenticate returns ErrInvalidToken for bad or expired tokens and for deleted users
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}
