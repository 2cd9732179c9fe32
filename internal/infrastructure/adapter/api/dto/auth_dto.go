package dto

import (
	"time"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/usecase"
)

// RegisterRequest is the body of POST /auth/register
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public view of a user
type UserResponse struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	WalletBalance string    `json:"wallet_balance"`
	Role          string    `json:"role"`
	CreatedAt     time.Time `json:"created_at"`
}

// TokenResponse is returned by register and login
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

// NewUserResponse converts a user entity
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		WalletBalance: u.FormattedBalance(),
		Role:          string(u.Role),
		CreatedAt:     u.CreatedAt,
	}
}

// NewTokenResponse converts an auth result
func NewTokenResponse(r *usecase.AuthResult) TokenResponse {
	return TokenResponse{
		AccessToken: r.AccessToken,
		TokenType:   r.TokenType,
		ExpiresAt:   r.ExpiresAt,
		User:        NewUserResponse(r.User),
	}
}
