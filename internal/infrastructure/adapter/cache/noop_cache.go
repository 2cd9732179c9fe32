package cache

import (
	"context"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/persistence"
)

// NoopLeaderboardCache never stores anything. It is used when Redis is disabled.
type NoopLeaderboardCache struct{}

var _ persistence.LeaderboardCache = NoopLeaderboardCache{}

func (NoopLeaderboardCache) Get(context.Context, string) (*entity.Leaderboard, error) { return nil, nil }

func (NoopLeaderboardCache) Set(context.Context, *entity.Leaderboard) error { return nil }

func (NoopLeaderboardCache) Invalidate(context.Context, string) error { return nil }
