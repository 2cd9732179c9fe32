package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/repository/memory"
	clock "github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/time"
	mockCore "github.com/amirhossein-jamali/fantasy-cricket/mocks/port/core"
)

type sequentialIDs struct{ n int }

func (g *sequentialIDs) NewID() string {
	g.n++
	return fmt.Sprintf("user-%d", g.n)
}

type authFixture struct {
	service *Service
	store   *memory.Store
	hasher  *mockCore.MockPasswordHasher
	tokens  *mockCore.MockTokenService
}

func newAuthFixture(t *testing.T) *authFixture {
	tp := clock.NewManualClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	store := memory.NewStore(tp, logger.NewNoopLogger())
	hasher := mockCore.NewMockPasswordHasher(t)
	tokens := mockCore.NewMockTokenService(t)

	return &authFixture{
		service: NewService(store, hasher, tokens, &sequentialIDs{}, tp, logger.NewNoopLogger()),
		store:   store,
		hasher:  hasher,
		tokens:  tokens,
	}
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()
	expiresAt := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	t.Run("should create a user and issue a token", func(t *testing.T) {
		// Arrange
		f := newAuthFixture(t)
		f.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
		f.tokens.EXPECT().Issue("user-1", "alice", "user").Return("token-1", expiresAt, nil)

		// Act
		result, err := f.service.Register(ctx, " alice ", "Alice@Example.com", "secret123")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "token-1", result.AccessToken)
		assert.Equal(t, TokenType, result.TokenType)
		assert.Equal(t, expiresAt, result.ExpiresAt)
		assert.Equal(t, "alice", result.User.Username)
		assert.Equal(t, "alice@example.com", result.User.Email)
		assert.Equal(t, entity.RoleUser, result.User.Role)
		assert.Equal(t, int64(0), result.User.WalletBalance())

		stored, err := f.store.GetUserRepository(ctx).GetByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "hashed", stored.PasswordHash)
	})

	t.Run("should reject a taken username or email", func(t *testing.T) {
		// Arrange
		f := newAuthFixture(t)
		f.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil).Once()
		f.tokens.EXPECT().Issue(mock.Anything, mock.Anything, mock.Anything).Return("token", expiresAt, nil).Once()
		_, err := f.service.Register(ctx, "alice", "alice@example.com", "secret123")
		require.NoError(t, err)

		// Act
		_, byName := f.service.Register(ctx, "alice", "other@example.com", "secret123")
		_, byEmail := f.service.Register(ctx, "bob", "ALICE@example.com", "secret123")

		// Assert
		assert.ErrorIs(t, byName, errs.ErrDuplicateUser)
		assert.ErrorIs(t, byEmail, errs.ErrDuplicateUser)
		assert.Equal(t, "Username or email already exists", errs.PublicMessage(byName))
	})

	t.Run("should reject a short password before hashing", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.service.Register(ctx, "alice", "alice@example.com", "12345")

		assert.ErrorIs(t, err, errs.ErrValidation)
		f.hasher.AssertNotCalled(t, "Hash", mock.Anything)
	})

	t.Run("should reject a malformed email or username", func(t *testing.T) {
		testCases := []struct {
			name     string
			username string
			email    string
		}{
			{"Short username", "al", "alice@example.com"},
			{"Bad email", "alice", "not-an-email"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				f := newAuthFixture(t)
				f.hasher.EXPECT().Hash("secret123").Return("hashed", nil)

				_, err := f.service.Register(ctx, tc.username, tc.email, "secret123")

				assert.ErrorIs(t, err, errs.ErrInvalidRequest)
				_, lookupErr := f.store.GetUserRepository(ctx).GetByUsername(ctx, tc.username)
				assert.ErrorIs(t, lookupErr, errs.ErrUserNotFound)
			})
		}
	})

	t.Run("should hide hashing failures", func(t *testing.T) {
		f := newAuthFixture(t)
		f.hasher.EXPECT().Hash("secret123").Return("", errors.New("entropy exhausted"))

		_, err := f.service.Register(ctx, "alice", "alice@example.com", "secret123")

		assert.ErrorIs(t, err, errs.ErrInternalServer)
		assert.Equal(t, "Internal server error", errs.PublicMessage(err))
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	expiresAt := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	register := func(t *testing.T, f *authFixture) {
		t.Helper()
		f.hasher.EXPECT().Hash("secret123").Return("hashed", nil).Once()
		f.tokens.EXPECT().Issue("user-1", "alice", "user").Return("token-1", expiresAt, nil).Once()
		_, err := f.service.Register(ctx, "alice", "alice@example.com", "secret123")
		require.NoError(t, err)
	}

	t.Run("should issue a token for valid credentials", func(t *testing.T) {
		f := newAuthFixture(t)
		register(t, f)
		f.hasher.EXPECT().Compare("hashed", "secret123").Return(nil)
		f.tokens.EXPECT().Issue("user-1", "alice", "user").Return("token-2", expiresAt, nil)

		result, err := f.service.Login(ctx, "alice", "secret123")

		require.NoError(t, err)
		assert.Equal(t, "token-2", result.AccessToken)
		assert.Equal(t, "user-1", result.User.ID)
	})

	t.Run("should fail the same way for wrong password and unknown user", func(t *testing.T) {
		f := newAuthFixture(t)
		register(t, f)
		f.hasher.EXPECT().Compare("hashed", "wrong").Return(errors.New("mismatch"))

		_, wrongPassword := f.service.Login(ctx, "alice", "wrong")
		_, unknownUser := f.service.Login(ctx, "nobody", "secret123")

		assert.ErrorIs(t, wrongPassword, errs.ErrInvalidCredentials)
		assert.ErrorIs(t, unknownUser, errs.ErrInvalidCredentials)
		assert.Equal(t, errs.PublicMessage(wrongPassword), errs.PublicMessage(unknownUser))
	})
}

func TestService_Authenticate(t *testing.T) {
	ctx := context.Background()
	expiresAt := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	f := newAuthFixture(t)
	f.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	f.tokens.EXPECT().Issue("user-1", "alice", "user").Return("token-1", expiresAt, nil)
	_, err := f.service.Register(ctx, "alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	t.Run("should resolve a valid token to its user", func(t *testing.T) {
		f.tokens.EXPECT().Verify("good").Return(&coreport.TokenClaims{UserID: "user-1"}, nil).Once()

		user, err := f.service.Authenticate(ctx, "good")

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("should reject bad tokens", func(t *testing.T) {
		f.tokens.EXPECT().Verify("bad").Return(nil, errs.ErrInvalidToken).Once()
		f.tokens.EXPECT().Verify("orphan").Return(&coreport.TokenClaims{UserID: "user-9"}, nil).Once()

		_, empty := f.service.Authenticate(ctx, "")
		_, bad := f.service.Authenticate(ctx, "bad")
		_, orphan := f.service.Authenticate(ctx, "orphan")

		assert.ErrorIs(t, empty, errs.ErrMissingToken)
		assert.ErrorIs(t, bad, errs.ErrInvalidToken)
		assert.ErrorIs(t, orphan, errs.ErrInvalidToken)
		assert.True(t, errs.IsUnauthenticatedError(orphan))
	})
}

func TestService_EnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("should create the admin once", func(t *testing.T) {
		f := newAuthFixture(t)
		f.hasher.EXPECT().Hash("admin12345").Return("hashed", nil).Once()

		created, err := f.service.EnsureAdmin(ctx, "admin", "admin@example.com", "admin12345")
		require.NoError(t, err)
		assert.True(t, created)

		again, err := f.service.EnsureAdmin(ctx, "admin", "admin@example.com", "admin12345")
		require.NoError(t, err)
		assert.False(t, again)

		admin, err := f.store.GetUserRepository(ctx).GetByUsername(ctx, "admin")
		require.NoError(t, err)
		assert.True(t, admin.IsAdmin())
	})

	t.Run("should report invalid bootstrap credentials", func(t *testing.T) {
		f := newAuthFixture(t)

		created, err := f.service.EnsureAdmin(ctx, "admin", "admin@example.com", "short")

		assert.False(t, created)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}
