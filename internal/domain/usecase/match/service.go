package match

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/usecase"
)

// matchTransitions lists the status changes a match feed may report
var matchTransitions = map[entity.MatchStatus][]entity.MatchStatus{
	entity.MatchUpcoming: {entity.MatchLive, entity.MatchCancelled},
	entity.MatchLive:     {entity.MatchCompleted, entity.MatchCancelled},
}

// Service manages fixtures and the players listed for them
type Service struct {
	uow          persistence.UnitOfWork
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.MatchUseCase = (*Service)(nil)

// NewService creates a new match service
func NewService(
	uow persistence.UnitOfWork,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateMatch registers an upcoming fixture
func (s *Service) CreateMatch(ctx context.Context, input usecase.CreateMatchInput) (*entity.Match, error) {
	match, err := entity.NewMatch(
		s.idGenerator.NewID(),
		input.Title,
		input.Team1,
		input.Team2,
		input.Venue,
		input.MatchType,
		input.StartTime,
		s.timeProvider.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err := s.uow.GetMatchRepository(ctx).Create(ctx, match); err != nil {
		return nil, err
	}

	s.logger.Info("Match created", map[string]any{
		"match_id":   match.ID,
		"slug":       match.Slug,
		"start_time": match.StartTime,
	})
	return match, nil
}

// GetMatch returns a match by id
func (s *Service) GetMatch(ctx context.Context, id string) (*entity.Match, error) {
	return s.uow.GetMatchRepository(ctx).GetByID(ctx, id)
}

// GetMatchBySlug returns a match by slug
func (s *Service) GetMatchBySlug(ctx context.Context, slug string) (*entity.Match, error) {
	return s.uow.GetMatchRepository(ctx).GetBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
}

// ListMatches returns matches ordered by start time
func (s *Service) ListMatches(ctx context.Context, status string) ([]*entity.Match, error) {
	if status != "" && !entity.IsValidMatchStatus(status) {
		return nil, fmt.Errorf("%w: unknown match status %q", errs.ErrInvalidRequest, status)
	}
	return s.uow.GetMatchRepository(ctx).List(ctx, entity.MatchStatus(status))
}

// UpdateMatchStatus applies a status change. Contest statuses follow on the next lifecycle pass.
func (s *Service) UpdateMatchStatus(ctx context.Context, id string, status string) (*entity.Match, error) {
	if !entity.IsValidMatchStatus(status) {
		return nil, fmt.Errorf("%w: unknown match status %q", errs.ErrInvalidRequest, status)
	}
	next := entity.MatchStatus(status)

	matches := s.uow.GetMatchRepository(ctx)
	match, err := matches.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if match.Status == next {
		return match, nil
	}
	if !canTransition(match.Status, next) {
		return nil, fmt.Errorf("%w: match cannot move from %s to %s", errs.ErrInvalidRequest, match.Status, next)
	}

	updated, err := matches.UpdateStatus(ctx, id, next, match.Status)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, errs.ErrConcurrentUpdate
	}

	s.logger.Info("Match status changed", map[string]any{
		"match_id": id,
		"from":     string(match.Status),
		"to":       string(next),
	})
	match.Status = next
	return match, nil
}

// CreatePlayer lists a player for a match
func (s *Service) CreatePlayer(ctx context.Context, input usecase.CreatePlayerInput) (*entity.Player, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(input.BasePrice))
	if err != nil {
		return nil, fmt.Errorf("%w: base price must be a number", errs.ErrInvalidRequest)
	}

	if _, err := s.uow.GetMatchRepository(ctx).GetByID(ctx, input.MatchID); err != nil {
		return nil, err
	}

	player, err := entity.NewPlayer(
		s.idGenerator.NewID(),
		input.MatchID,
		input.Name,
		entity.PlayerRole(input.Role),
		input.Team,
		price,
		input.ImageURL,
	)
	if err != nil {
		return nil, err
	}

	if err := s.uow.GetPlayerRepository(ctx).Create(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("Player created", map[string]any{
		"player_id": player.ID,
		"match_id":  player.MatchID,
		"role":      string(player.Role),
	})
	return player, nil
}

// ListPlayers returns the players of a match
func (s *Service) ListPlayers(ctx context.Context, matchID string) ([]*entity.Player, error) {
	if _, err := s.uow.GetMatchRepository(ctx).GetByID(ctx, matchID); err != nil {
		return nil, err
	}
	return s.uow.GetPlayerRepository(ctx).ListByMatch(ctx, matchID)
}

func canTransition(from, to entity.MatchStatus) bool {
	for _, allowed := range matchTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
