package core

import "time"

// PasswordHasher hashes and verifies user passwords
type PasswordHasher interface {
	// Hash returns a one-way hash of the password
	Hash(password string) (string, error)
	// Compare returns nil when password matches hash
	Compare(hash, password string) error
}

// TokenClaims is the identity carried inside an access token
type TokenClaims struct {
	UserID    string
	Username  string
	Role      string
	ExpiresAt time.Time
}

// TokenService issues and verifies bearer access tokens
type TokenService interface {
	// Issue creates a signed token for the given identity
	Issue(userID, username, role string) (token string, expiresAt time.Time, err error)
	// Verify parses a token and returns its claims, or ErrInvalidToken
	Verify(token string) (*TokenClaims, error)
}
