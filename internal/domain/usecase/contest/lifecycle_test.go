package contest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/usecase"
)

func TestLifecycle_SyncWithMatches(t *testing.T) {
	ctx := context.Background()

	t.Run("should follow matches from start to completion", func(t *testing.T) {
		// Arrange
		f := newContestFixture(t, nil)
		lifecycle := NewLifecycle(f.store, f.service.Registry, f.clock, f.log)

		f.seedMatch(t, "m1", time.Hour)
		f.seedContest(t, "open", "m1", 1000, 10)
		f.seedContest(t, "full", "m1", 1000, 1)
		f.seedUser(t, "u1", 1000)
		f.seedTeam(t, "t1", "u1", "m1")
		_, err := f.service.JoinContest(ctx, "u1", "full", "t1")
		require.NoError(t, err)

		// Act: before the start time nothing moves
		report, err := lifecycle.SyncWithMatches(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, usecase.SyncReport{}, *report)
		assert.Equal(t, entity.ContestOpen, f.contest(t, "open").Status)

		// Act: past the start time
		f.clock.Set(start.Add(2 * time.Hour))
		report, err = lifecycle.SyncWithMatches(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, usecase.SyncReport{MatchesStarted: 1, ContestsLive: 2}, *report)
		assert.Equal(t, entity.ContestLive, f.contest(t, "open").Status)
		assert.Equal(t, entity.ContestLive, f.contest(t, "full").Status)

		// Act: a repeated pass is a no-op
		report, err = lifecycle.SyncWithMatches(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, usecase.SyncReport{}, *report)

		// Act: the match completes
		_, err = f.store.GetMatchRepository(ctx).UpdateStatus(ctx, "m1", entity.MatchCompleted, entity.MatchLive)
		require.NoError(t, err)
		report, err = lifecycle.SyncWithMatches(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, usecase.SyncReport{ContestsCompleted: 2}, *report)
		assert.Equal(t, entity.ContestCompleted, f.contest(t, "open").Status)
		assert.Equal(t, entity.ContestCompleted, f.contest(t, "full").Status)
	})

	t.Run("should complete contests a pass never saw live", func(t *testing.T) {
		// Arrange
		f := newContestFixture(t, nil)
		lifecycle := NewLifecycle(f.store, f.service.Registry, f.clock, f.log)
		f.seedMatch(t, "m1", time.Hour)
		f.seedContest(t, "c1", "m1", 1000, 10)
		_, err := f.store.GetMatchRepository(ctx).UpdateStatus(ctx, "m1", entity.MatchCompleted, entity.MatchUpcoming)
		require.NoError(t, err)

		// Act
		report, err := lifecycle.SyncWithMatches(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 1, report.ContestsCompleted)
		assert.Equal(t, entity.ContestCompleted, f.contest(t, "c1").Status)
	})

	t.Run("should cancel and refund contests of cancelled matches", func(t *testing.T) {
		// Arrange
		f := newContestFixture(t, nil)
		lifecycle := NewLifecycle(f.store, f.service.Registry, f.clock, f.log)
		f.seedMatch(t, "m1", 48*time.Hour)
		f.seedContest(t, "c1", "m1", 2000, 10)
		f.seedUser(t, "u1", 5000)
		f.seedTeam(t, "t1", "u1", "m1")
		_, err := f.service.JoinContest(ctx, "u1", "c1", "t1")
		require.NoError(t, err)
		require.Equal(t, int64(3000), f.balance(t, "u1"))

		_, err = f.store.GetMatchRepository(ctx).UpdateStatus(ctx, "m1", entity.MatchCancelled, entity.MatchUpcoming)
		require.NoError(t, err)

		// Act
		report, err := lifecycle.SyncWithMatches(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, usecase.SyncReport{ContestsCancelled: 1}, *report)
		assert.Equal(t, entity.ContestCancelled, f.contest(t, "c1").Status)
		assert.Equal(t, int64(5000), f.balance(t, "u1"))

		// Act: cancelled contests are terminal and not picked up again
		report, err = lifecycle.SyncWithMatches(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 0, report.ContestsCancelled)
	})
}
