package persistence

import (
	"context"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
)

// ContestFilter narrows a contest listing. Empty fields match everything.
type ContestFilter struct {
	MatchID string
	Status  entity.ContestStatus
}

// ContestRepository defines access to contests
type ContestRepository interface {
	// Create saves a new contest
	Create(ctx context.Context, contest *entity.Contest) error

	// GetByID retrieves a contest, or ErrContestNotFound
	GetByID(ctx context.Context, id string) (*entity.Contest, error)

	// List returns contests matching the filter, newest first
	List(ctx context.Context, filter ContestFilter) ([]*entity.Contest, error)

	// ListByMatch returns the contests of a match that are in one of statuses
	ListByMatch(ctx context.Context, matchID string, statuses ...entity.ContestStatus) ([]*entity.Contest, error)

	// IncrementJoined takes one seat in a single conditional statement: it only succeeds while
	// the contest is open and below capacity, and flips the status to full on the last seat.
	// It returns the updated contest.
	//
	// Possible errors:
	// - ErrContestNotFound: If the contest doesn't exist
	// - ErrContestNotOpen: If the contest is not open
	// - ErrContestFull: If no seat is left
	IncrementJoined(ctx context.Context, id string) (*entity.Contest, error)

	// UpdateStatus moves a contest to status `to` if its current status is one of from.
	// It reports false when the contest was in none of them.
	UpdateStatus(ctx context.Context, id string, to entity.ContestStatus, from ...entity.ContestStatus) (bool, error)
}
