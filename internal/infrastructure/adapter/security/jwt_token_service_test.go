package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
	clock "github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestJWTTokenService(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Round trip", func(t *testing.T) {
		tp := clock.NewManualClock(start)
		svc, err := NewJWTTokenService(testSecret, "fantasy-cricket", 30*time.Minute, tp)
		require.NoError(t, err)

		token, expiresAt, err := svc.Issue("user-1", "alice", "user")
		require.NoError(t, err)
		assert.Equal(t, start.Add(30*time.Minute), expiresAt)

		claims, err := svc.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "alice", claims.Username)
		assert.Equal(t, "user", claims.Role)
		assert.True(t, claims.ExpiresAt.Equal(expiresAt))
	})

	t.Run("Expired token", func(t *testing.T) {
		tp := clock.NewManualClock(start)
		svc, err := NewJWTTokenService(testSecret, "fantasy-cricket", time.Minute, tp)
		require.NoError(t, err)

		token, _, err := svc.Issue("user-1", "alice", "user")
		require.NoError(t, err)

		tp.Advance(2 * time.Minute)
		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("Other secret or issuer", func(t *testing.T) {
		tp := clock.NewManualClock(start)
		issuer, err := NewJWTTokenService(testSecret, "fantasy-cricket", time.Hour, tp)
		require.NoError(t, err)
		otherSecret, err := NewJWTTokenService(testSecret+"x", "fantasy-cricket", time.Hour, tp)
		require.NoError(t, err)
		otherIssuer, err := NewJWTTokenService(testSecret, "someone-else", time.Hour, tp)
		require.NoError(t, err)

		token, _, err := issuer.Issue("user-1", "alice", "user")
		require.NoError(t, err)

		_, err = otherSecret.Verify(token)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
		_, err = otherIssuer.Verify(token)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("Unsigned token is rejected", func(t *testing.T) {
		tp := clock.NewManualClock(start)
		svc, err := NewJWTTokenService(testSecret, "fantasy-cricket", time.Hour, tp)
		require.NoError(t, err)

		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    "fantasy-cricket",
			ExpiresAt: jwt.NewNumericDate(start.Add(time.Hour)),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.Verify(unsigned)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
		_, err = svc.Verify("not-a-token")
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("Configuration checks", func(t *testing.T) {
		tp := clock.NewManualClock(start)
		_, err := NewJWTTokenService("short", "fantasy-cricket", time.Hour, tp)
		assert.Error(t, err)
		_, err = NewJWTTokenService(testSecret, "fantasy-cricket", 0, tp)
		assert.Error(t, err)
	})
}
