package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/persistence"
)

const keyPrefix = "leaderboard:"

// kvClient is the part of the redis client the cache uses
type kvClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type cachedEntry struct {
	Rank        int             `json:"rank"`
	UserID      string          `json:"user_id"`
	Username    string          `json:"username"`
	TeamID      string          `json:"team_id"`
	TeamName    string          `json:"team_name"`
	TotalPoints decimal.Decimal `json:"total_points"`
	Winnings    int64           `json:"winnings"`
}

type cachedBoard struct {
	ContestID    string        `json:"contest_id"`
	MatchID      string        `json:"match_id"`
	Entries      []cachedEntry `json:"entries"`
	TotalEntries int           `json:"total_entries"`
	PrizePool    int64         `json:"prize_pool"`
}

// RedisLeaderboardCache stores leaderboards as JSON documents with a TTL
type RedisLeaderboardCache struct {
	client kvClient
	ttl    time.Duration
	logger coreport.Logger
}

var _ persistence.LeaderboardCache = (*RedisLeaderboardCache)(nil)

// NewRedisClient connects to Redis and checks the connection
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("could not connect to redis at %s: %w", addr, err)
	}
	return client, nil
}

// NewRedisLeaderboardCache creates a cache on top of a connected client
func NewRedisLeaderboardCache(client *redis.Client, ttl time.Duration, logger coreport.Logger) *RedisLeaderboardCache {
	return newRedisLeaderboardCache(client, ttl, logger)
}

func newRedisLeaderboardCache(client kvClient, ttl time.Duration, logger coreport.Logger) *RedisLeaderboardCache {
	return &RedisLeaderboardCache{client: client, ttl: ttl, logger: logger}
}

// Get returns nil and no error on a miss
func (c *RedisLeaderboardCache) Get(ctx context.Context, contestID string) (*entity.Leaderboard, error) {
	raw, err := c.client.Get(ctx, keyPrefix+contestID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("read leaderboard %s: %w", contestID, err)
	}

	var doc cachedBoard
	if err := json.Unmarshal(raw, &doc); err != nil {
		// A document we cannot read is treated as a miss and rebuilt
		c.logger.Warn("Dropping unreadable cached leaderboard", map[string]any{
			"contest_id": contestID,
			"error":      err.Error(),
		})
		return nil, nil
	}
	return doc.toEntity(), nil
}

// Set stores the leaderboard for the configured TTL
func (c *RedisLeaderboardCache) Set(ctx context.Context, board *entity.Leaderboard) error {
	raw, err := json.Marshal(fromEntity(board))
	if err != nil {
		return fmt.Errorf("encode leaderboard %s: %w", board.ContestID, err)
	}
	if err := c.client.Set(ctx, keyPrefix+board.ContestID, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("write leaderboard %s: %w", board.ContestID, err)
	}
	return nil
}

// Invalidate deletes the cached leaderboard of a contest
func (c *RedisLeaderboardCache) Invalidate(ctx context.Context, contestID string) error {
	if err := c.client.Del(ctx, keyPrefix+contestID).Err(); err != nil {
		return fmt.Errorf("invalidate leaderboard %s: %w", contestID, err)
	}
	return nil
}

func fromEntity(board *entity.Leaderboard) cachedBoard {
	entries := make([]cachedEntry, len(board.Entries))
	for i, e := range board.Entries {
		entries[i] = cachedEntry(e)
	}
	return cachedBoard{
		ContestID:    board.ContestID,
		MatchID:      board.MatchID,
		Entries:      entries,
		TotalEntries: board.TotalEntries,
		PrizePool:    board.PrizePool,
	}
}

func (d cachedBoard) toEntity() *entity.Leaderboard {
	entries := make([]entity.LeaderboardEntry, len(d.Entries))
	for i, e := range d.Entries {
		entries[i] = entity.LeaderboardEntry(e)
	}
	return &entity.Leaderboard{
		ContestID:    d.ContestID,
		MatchID:      d.MatchID,
		Entries:      entries,
		TotalEntries: d.TotalEntries,
		PrizePool:    d.PrizePool,
	}
}
