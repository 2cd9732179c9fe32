package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
)

// MatchRepository defines access to fixtures
type MatchRepository interface {
	// Create saves a new match
	//
	// Possible errors:
	// - ErrDuplicateMatch: If a match with the same slug exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, match *entity.Match) error

	// GetByID retrieves a match, or ErrMatchNotFound
	GetByID(ctx context.Context, id string) (*entity.Match, error)

	// GetBySlug retrieves a match by its slug, or ErrMatchNotFound
	GetBySlug(ctx context.Context, slug string) (*entity.Match, error)

	// List returns matches ordered by start time. An empty status returns all matches.
	List(ctx context.Context, status entity.MatchStatus) ([]*entity.Match, error)

	// ListDueToStart returns upcoming matches whose start time is at or before now
	ListDueToStart(ctx context.Context, now time.Time) ([]*entity.Match, error)

	// UpdateStatus moves a match to status `to` if its current status is one of from.
	// It reports false when the match was in none of them.
	UpdateStatus(ctx context.Context, id string, to entity.MatchStatus, from ...entity.MatchStatus) (bool, error)
}
