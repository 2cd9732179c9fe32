package persistence

import (
	"context"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
)

// ContestEntryRepository defines access to contest entries
type ContestEntryRepository interface {
	// Create saves an entry. Storage enforces one entry per (contest, user).
	//
	// Possible errors:
	// - ErrAlreadyJoined: If the user already has an entry in the contest
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, entry *entity.ContestEntry) error

	// Exists reports whether the user has an entry in the contest
	Exists(ctx context.Context, contestID, userID string) (bool, error)

	// ListByContest returns the entries of a contest ordered by creation time, then id
	ListByContest(ctx context.Context, contestID string) ([]*entity.ContestEntry, error)

	// ListByUser returns the entries of a user, newest first
	ListByUser(ctx context.Context, userID string) ([]*entity.ContestEntry, error)
}
