package persistence

import (
	"context"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
)

// LeaderboardCache keeps built leaderboards for a short time
type LeaderboardCache interface {
	// Get returns the cached leaderboard, or nil and no error on a miss
	Get(ctx context.Context, contestID string) (*entity.Leaderboard, error)

	// Set stores a leaderboard until it expires or is invalidated
	Set(ctx context.Context, board *entity.Leaderboard) error

	// Invalidate drops the cached leaderboard of a contest
	Invalidate(ctx context.Context, contestID string) error
}
