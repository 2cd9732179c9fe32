package team

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/usecase"
)

// Service implements team creation and lookup
type Service struct {
	uow          persistence.UnitOfWork
	validator    *Validator
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.TeamUseCase = (*Service)(nil)

// NewService creates a new team service
func NewService(
	uow persistence.UnitOfWork,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		validator:    NewValidator(),
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateTeam validates the selection and stores the team with its roster.
// Nothing is written when any rule fails.
func (s *Service) CreateTeam(ctx context.Context, userID string, input usecase.CreateTeamInput) (*entity.Team, error) {
	name := strings.TrimSpace(input.TeamName)
	if name == "" || len(name) > entity.MaxTeamNameLength {
		return nil, errs.ErrInvalidTeamName
	}

	match, err := s.uow.GetMatchRepository(ctx).GetByID(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(input.Players))
	for _, p := range input.Players {
		ids = append(ids, p.PlayerID)
	}
	players, err := s.uow.GetPlayerRepository(ctx).FindByIDsInMatch(ctx, match.ID, ids)
	if err != nil {
		return nil, err
	}

	roster, err := s.validator.Validate(input.Players, players)
	if err != nil {
		s.logger.Info("Team rejected", map[string]any{
			"user_id":  userID,
			"match_id": match.ID,
			"reason":   errs.PublicMessage(err),
		})
		return nil, err
	}

	team := &entity.Team{
		ID:          s.idGenerator.NewID(),
		UserID:      userID,
		MatchID:     match.ID,
		TeamName:    name,
		Players:     roster,
		TotalPoints: decimal.Zero,
		CreatedAt:   s.timeProvider.Now(),
	}

	err = s.uow.WithinTransaction(ctx, func(txCtx context.Context) error {
		return s.uow.GetTeamRepository(txCtx).Create(txCtx, team)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Team created", map[string]any{
		"team_id":  team.ID,
		"user_id":  userID,
		"match_id": match.ID,
	})
	return team, nil
}

// GetTeam returns a team with its roster
func (s *Service) GetTeam(ctx context.Context, id string) (*entity.Team, error) {
	return s.uow.GetTeamRepository(ctx).GetByID(ctx, id)
}

// ListTeamsByUser returns the user's teams, newest first
func (s *Service) ListTeamsByUser(ctx context.Context, userID string) ([]*entity.Team, error) {
	return s.uow.GetTeamRepository(ctx).ListByUser(ctx, userID)
}
