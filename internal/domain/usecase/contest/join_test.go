package contest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
	mockpersistence "github.com/amirhossein-jamali/fantasy-cricket/mocks/port/persistence"
)

func TestService_JoinContest(t *testing.T) {
	ctx := context.Background()

	t.Run("should debit the fee and take a seat", func(t *testing.T) {
		// Arrange
		f := newContestFixture(t, nil)
		f.seedUser(t, "u1", 10000)
		f.seedMatch(t, "m1", 24*time.Hour)
		f.seedTeam(t, "t1", "u1", "m1")
		f.seedContest(t, "c1", "m1", 2500, 10)

		// Act
		entry, err := f.service.JoinContest(ctx, "u1", "c1", "t1")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "c1", entry.ContestID)
		assert.Equal(t, "u1", entry.UserID)
		assert.Equal(t, "t1", entry.TeamID)
		assert.Equal(t, int64(7500), f.balance(t, "u1"))
		assert.Equal(t, 1, f.contest(t, "c1").JoinedUsers)

		history, err := f.store.GetTransactionRepository(ctx).ListByUser(ctx, "u1", 10)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, entity.TypeContestEntry, history[0].Type)
		assert.Equal(t, int64(2500), history[0].Amount)
		assert.Equal(t, "c1", history[0].ReferenceID)
		assert.Equal(t, int64(7500), history[0].BalanceAfter)
	})

	t.Run("should not debit for a free contest", func(t *testing.T) {
		// Arrange
		f := newContestFixture(t, nil)
		f.seedUser(t, "u1", 0)
		f.seedMatch(t, "m1", 24*time.Hour)
		f.seedTeam(t, "t1", "u1", "m1")
		f.seedContest(t, "c1", "m1", 0, 10)

		// Act
		_, err := f.service.JoinContest(ctx, "u1", "c1", "t1")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(0), f.balance(t, "u1"))
		history, err := f.store.GetTransactionRepository(ctx).ListByUser(ctx, "u1", 10)
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("should mark the contest full when the last seat is taken", func(t *testing.T) {
		// Arrange
		f := newContestFixture(t, nil)
		f.seedUser(t, "u1", 1000)
		f.seedUser(t, "u2", 1000)
		f.seedMatch(t, "m1", 24*time.Hour)
		f.seedTeam(t, "t1", "u1", "m1")
		f.seedTeam(t, "t2", "u2", "m1")
		f.seedContest(t, "c1", "m1", 1000, 1)

		// Act
		_, err := f.service.JoinContest(ctx, "u1", "c1", "t1")
		require.NoError(t, err)
		_, err = f.service.JoinContest(ctx, "u2", "c1", "t2")

		// Assert
		assert.ErrorIs(t, err, errs.ErrContestNotOpen)
		assert.Equal(t, entity.ContestFull, f.contest(t, "c1").Status)
		assert.Equal(t, int64(1000), f.balance(t, "u2"))
	})

	t.Run("should reject a second entry by the same user", func(t *testing.T) {
		// Arrange
		f := newContestFixture(t, nil)
		f.seedUser(t, "u1", 5000)
		f.seedMatch(t, "m1", 24*time.Hour)
		f.seedTeam(t, "t1", "u1", "m1")
		f.seedTeam(t, "t2", "u1", "m1")
		f.seedContest(t, "c1", "m1", 1000, 10)
		_, err := f.service.JoinContest(ctx, "u1", "c1", "t1")
		require.NoError(t, err)

		// Act
		_, err = f.service.JoinContest(ctx, "u1", "c1", "t2")

		// Assert
		assert.ErrorIs(t, err, errs.ErrAlreadyJoined)
		assert.Equal(t, int64(4000), f.balance(t, "u1"))
		assert.Equal(t, 1, f.contest(t, "c1").JoinedUsers)
	})

	t.Run("should reject with insufficient funds and leave no trace", func(t *testing.T) {
		// Arrange
		f := newContestFixture(t, nil)
		f.seedUser(t, "u1", 999)
		f.seedMatch(t, "m1", 24*time.Hour)
		f.seedTeam(t, "t1", "u1", "m1")
		f.seedContest(t, "c1", "m1", 1000, 10)

		// Act
		entry, err := f.service.JoinContest(ctx, "u1", "c1", "t1")

		// Assert
		assert.Nil(t, entry)
		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		assert.Equal(t, int64(999), f.balance(t, "u1"))
		assert.Equal(t, 0, f.contest(t, "c1").JoinedUsers)

		joined, err := f.store.GetContestEntryRepository(ctx).Exists(ctx, "c1", "u1")
		require.NoError(t, err)
		assert.False(t, joined)
	})

	t.Run("should reject teams the user cannot enter", func(t *testing.T) {
		// Arrange
		f := newContestFixture(t, nil)
		f.seedUser(t, "u1", 5000)
		f.seedUser(t, "u2", 5000)
		f.seedMatch(t, "m1", 24*time.Hour)
		f.seedMatch(t, "m2", 48*time.Hour)
		f.seedTeam(t, "own-other-match", "u1", "m2")
		f.seedTeam(t, "someone-else", "u2", "m1")
		f.seedContest(t, "c1", "m1", 1000, 10)

		testCases := []struct {
			name   string
			teamID string
			want   error
		}{
			{"Team of another user", "someone-else", errs.ErrTeamNotOwned},
			{"Unknown team", "missing", errs.ErrTeamNotOwned},
			{"Team for another match", "own-other-match", errs.ErrTeamWrongMatch},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				// Act
				_, err := f.service.JoinContest(ctx, "u1", "c1", tc.teamID)

				// Assert
				assert.ErrorIs(t, err, tc.want)
				assert.Equal(t, int64(5000), f.balance(t, "u1"))
			})
		}
	})

	t.Run("should report a missing contest", func(t *testing.T) {
		// Arrange
		f := newContestFixture(t, nil)
		f.seedUser(t, "u1", 5000)

		// Act
		_, err := f.service.JoinContest(ctx, "u1", "missing", "t1")

		// Assert
		assert.ErrorIs(t, err, errs.ErrContestNotFound)
	})

	t.Run("should check the contest state before team ownership", func(t *testing.T) {
		// Arrange
		f := newContestFixture(t, nil)
		f.seedUser(t, "u1", 5000)
		f.seedMatch(t, "m1", 24*time.Hour)
		f.seedContest(t, "c1", "m1", 1000, 10)
		_, err := f.service.CancelContest(ctx, "c1")
		require.NoError(t, err)

		// Act
		_, err = f.service.JoinContest(ctx, "u1", "c1", "missing")

		// Assert
		assert.ErrorIs(t, err, errs.ErrContestNotOpen)
	})

	t.Run("should fill the last seat exactly once under concurrency", func(t *testing.T) {
		// Arrange
		f := newContestFixture(t, nil)
		f.seedMatch(t, "m1", 24*time.Hour)
		f.seedContest(t, "c1", "m1", 1000, 1)

		const users = 8
		for i := 0; i < users; i++ {
			id := fmt.Sprintf("u%d", i)
			f.seedUser(t, id, 1000)
			f.seedTeam(t, "t-"+id, id, "m1")
		}

		// Act
		var wg sync.WaitGroup
		results := make([]error, users)
		for i := 0; i < users; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				id := fmt.Sprintf("u%d", i)
				_, results[i] = f.service.JoinContest(ctx, id, "c1", "t-"+id)
			}(i)
		}
		wg.Wait()

		// Assert
		var succeeded int
		var total int64
		for i, err := range results {
			if err == nil {
				succeeded++
			} else {
				assert.True(t, errors.Is(err, errs.ErrContestNotOpen) || errors.Is(err, errs.ErrContestFull), err)
			}
			total += f.balance(t, fmt.Sprintf("u%d", i))
		}
		assert.Equal(t, 1, succeeded)
		assert.Equal(t, int64(users*1000-1000), total)

		c := f.contest(t, "c1")
		assert.Equal(t, 1, c.JoinedUsers)
		assert.Equal(t, entity.ContestFull, c.Status)
	})

	t.Run("should invalidate the cached leaderboard", func(t *testing.T) {
		// Arrange
		lc := mockpersistence.NewMockLeaderboardCache(t)
		lc.EXPECT().Invalidate(mock.Anything, "c1").Return(nil).Once()

		f := newContestFixture(t, lc)
		f.seedUser(t, "u1", 1000)
		f.seedMatch(t, "m1", 24*time.Hour)
		f.seedTeam(t, "t1", "u1", "m1")
		f.seedContest(t, "c1", "m1", 1000, 10)

		// Act
		_, err := f.service.JoinContest(ctx, "u1", "c1", "t1")

		// Assert
		require.NoError(t, err)
	})

	t.Run("should keep the entry when the cache is unavailable", func(t *testing.T) {
		// Arrange
		lc := mockpersistence.NewMockLeaderboardCache(t)
		lc.EXPECT().Invalidate(mock.Anything, "c1").Return(errors.New("redis down")).Once()

		f := newContestFixture(t, lc)
		f.seedUser(t, "u1", 1000)
		f.seedMatch(t, "m1", 24*time.Hour)
		f.seedTeam(t, "t1", "u1", "m1")
		f.seedContest(t, "c1", "m1", 1000, 10)

		// Act
		_, err := f.service.JoinContest(ctx, "u1", "c1", "t1")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 1, f.contest(t, "c1").JoinedUsers)
		assert.Contains(t, f.log.Messages(coreport.LogLevelWarn), "Failed to invalidate leaderboard cache")
	})
}
