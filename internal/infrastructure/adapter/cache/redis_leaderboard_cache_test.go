package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/logger"
)

type fakeKV struct {
	values  map[string]string
	ttls    map[string]time.Duration
	failing error
}

func newFakeKV() *fakeKV {
	return &fakeKV{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeKV) Get(_ context.Context, key string) *redis.StringCmd {
	if f.failing != nil {
		return redis.NewStringResult("", f.failing)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeKV) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.failing != nil {
		return redis.NewStatusResult("", f.failing)
	}
	f.values[key] = string(value.([]byte))
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeKV) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.values[k]; ok {
			delete(f.values, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisLeaderboardCache(t *testing.T) {
	ctx := context.Background()
	board := &entity.Leaderboard{
		ContestID: "c-1",
		MatchID:   "m-1",
		Entries: []entity.LeaderboardEntry{
			{Rank: 1, UserID: "u-2", Username: "bob", TeamID: "t-2", TeamName: "Bob XI", TotalPoints: decimal.RequireFromString("50.5")},
			{Rank: 2, UserID: "u-1", Username: "alice", TeamID: "t-1", TeamName: "Alice XI", TotalPoints: decimal.NewFromInt(30)},
		},
		TotalEntries: 2,
		PrizePool:    10000,
	}

	t.Run("Miss then hit", func(t *testing.T) {
		kv := newFakeKV()
		c := newRedisLeaderboardCache(kv, 30*time.Second, logger.NewNoopLogger())

		got, err := c.Get(ctx, "c-1")
		require.NoError(t, err)
		assert.Nil(t, got)

		require.NoError(t, c.Set(ctx, board))
		assert.Equal(t, 30*time.Second, kv.ttls["leaderboard:c-1"])

		got, err = c.Get(ctx, "c-1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, board.ContestID, got.ContestID)
		assert.Equal(t, board.PrizePool, got.PrizePool)
		require.Len(t, got.Entries, 2)
		assert.Equal(t, "bob", got.Entries[0].Username)
		assert.True(t, got.Entries[0].TotalPoints.Equal(decimal.RequireFromString("50.5")))
	})

	t.Run("Invalidate removes the document", func(t *testing.T) {
		kv := newFakeKV()
		c := newRedisLeaderboardCache(kv, time.Minute, logger.NewNoopLogger())
		require.NoError(t, c.Set(ctx, board))

		require.NoError(t, c.Invalidate(ctx, "c-1"))

		got, err := c.Get(ctx, "c-1")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Corrupt document is a miss", func(t *testing.T) {
		kv := newFakeKV()
		kv.values[keyPrefix+"c-1"] = "{not json"
		rec := logger.NewRecordingLogger()
		c := newRedisLeaderboardCache(kv, time.Minute, rec)

		got, err := c.Get(ctx, "c-1")
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.Len(t, rec.Messages(core.LogLevelWarn), 1)
	})

	t.Run("Transport errors surface", func(t *testing.T) {
		kv := newFakeKV()
		kv.failing = errors.New("connection refused")
		c := newRedisLeaderboardCache(kv, time.Minute, logger.NewNoopLogger())

		_, err := c.Get(ctx, "c-1")
		assert.Error(t, err)
		assert.Error(t, c.Set(ctx, board))
	})
}

func TestNoopLeaderboardCache(t *testing.T) {
	var c NoopLeaderboardCache
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, &entity.Leaderboard{ContestID: "c-1"}))
	got, err := c.Get(ctx, "c-1")
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, c.Invalidate(ctx, "c-1"))
}
