package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/usecase"
)

// TokenType is the scheme clients must use in the Authorization header
const TokenType = "bearer"

// Service handles registration, login and token resolution
type Service struct {
	uow          persistence.UnitOfWork
	hasher       coreport.PasswordHasher
	tokens       coreport.TokenService
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var (
	_ usecase.AuthUseCase   = (*Service)(nil)
	_ usecase.Authenticator = (*Service)(nil)
)

// NewService creates a new auth service
func NewService(
	uow persistence.UnitOfWork,
	hasher coreport.PasswordHasher,
	tokens coreport.TokenService,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		hasher:       hasher,
		tokens:       tokens,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Register creates a regular user and returns a token for it
func (s *Service) Register(ctx context.Context, username, email, password string) (*usecase.AuthResult, error) {
	user, err := s.createUser(ctx, username, email, password, entity.RoleUser)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User registered", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return s.issue(user)
}

// Login verifies credentials. Unknown users and wrong passwords fail the same way.
func (s *Service) Login(ctx context.Context, username, password string) (*usecase.AuthResult, error) {
	user, err := s.uow.GetUserRepository(ctx).GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		s.logger.Info("Login failed", map[string]any{"username": user.Username})
		return nil, errs.ErrInvalidCredentials
	}

	return s.issue(user)
}

// Profile returns the user with a fresh wallet balance
func (s *Service) Profile(ctx context.Context, userID string) (*entity.User, error) {
	return s.uow.GetUserRepository(ctx).GetByID(ctx, userID)
}

// Authenticate resolves a bearer token to its user
func (s *Service) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, errs.ErrMissingToken
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, errs.ErrInvalidToken
	}

	user, err := s.uow.GetUserRepository(ctx).GetByID(ctx, claims.UserID)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, errs.ErrInvalidToken
		}
		return nil, err
	}
	return user, nil
}

// EnsureAdmin creates the bootstrap administrator unless the username or email is taken.
// It reports whether a user was created.
func (s *Service) EnsureAdmin(ctx context.Context, username, email, password string) (bool, error) {
	_, err := s.createUser(ctx, username, email, password, entity.RoleAdmin)
	if err != nil {
		if errs.IsConflictError(err) {
			return false, nil
		}
		return false, err
	}

	s.logger.Info("Bootstrap admin created", map[string]any{"username": username})
	return true, nil
}

func (s *Service) createUser(ctx context.Context, username, email, password string, role entity.UserRole) (*entity.User, error) {
	if len(password) < entity.MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", errs.ErrInvalidRequest, entity.MinPasswordLength)
	}

	users := s.uow.GetUserRepository(ctx)
	exists, err := users.ExistsByUsernameOrEmail(ctx, strings.TrimSpace(username), strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.ErrDuplicateUser
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to hash password", errs.ErrInternalServer)
	}

	user, err := entity.NewUser(s.idGenerator.NewID(), username, email, hash, role, s.timeProvider)
	if err != nil {
		return nil, err
	}

	// The unique indexes still reject a concurrent registration that passed the check above
	if err := users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) issue(user *entity.User) (*usecase.AuthResult, error) {
	token, expiresAt, err := s.tokens.Issue(user.ID, user.Username, string(user.Role))
	if err != nil {
		s.logger.Error("Failed to issue token", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: failed to issue token", errs.ErrInternalServer)
	}

	return &usecase.AuthResult{
		AccessToken: token,
		TokenType:   TokenType,
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}
