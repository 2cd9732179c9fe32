package persistence

import (
	"context"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
)

// TeamRepository defines access to fantasy teams
type TeamRepository interface {
	// Create saves a team together with its roster
	Create(ctx context.Context, team *entity.Team) error

	// GetByID retrieves a team with its roster, or ErrTeamNotFound
	GetByID(ctx context.Context, id string) (*entity.Team, error)

	// ListByUser returns the teams of a user, newest first
	ListByUser(ctx context.Context, userID string) ([]*entity.Team, error)
}
