package usecase

import (
	"context"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
)

// CreateTeamInput is a team submission
type CreateTeamInput struct {
	MatchID  string
	TeamName string
	Players  []entity.PlayerSelection
}

// TeamUseCase defines fantasy team operations
type TeamUseCase interface {
	// CreateTeam validates the selection against the match roster and stores the team
	CreateTeam(ctx context.Context, userID string, input CreateTeamInput) (*entity.Team, error)
	GetTeam(ctx context.Context, id string) (*entity.Team, error)
	ListTeamsByUser(ctx context.Context, userID string) ([]*entity.Team, error)
}
