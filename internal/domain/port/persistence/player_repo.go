package persistence

import (
	"context"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
)

// PlayerRepository defines access to the players listed for matches
type PlayerRepository interface {
	// Create saves a new player
	Create(ctx context.Context, player *entity.Player) error

	// GetByID retrieves a player, or ErrPlayerNotFound
	GetByID(ctx context.Context, id string) (*entity.Player, error)

	// ListByMatch returns every player of a match ordered by name
	ListByMatch(ctx context.Context, matchID string) ([]*entity.Player, error)

	// FindByIDsInMatch returns the players among ids that belong to matchID.
	// Unknown ids and players of other matches are simply absent from the result.
	FindByIDsInMatch(ctx context.Context, matchID string, ids []string) ([]*entity.Player, error)
}
