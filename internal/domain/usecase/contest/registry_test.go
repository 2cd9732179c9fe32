package contest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/usecase"
	mockpersistence "github.com/amirhossein-jamali/fantasy-cricket/mocks/port/persistence"
)

func TestService_CreateContest(t *testing.T) {
	ctx := context.Background()

	t.Run("should create an open contest with its prize pool", func(t *testing.T) {
		// Arrange
		f := newContestFixture(t, nil)
		f.seedMatch(t, "m1", 24*time.Hour)
		input := usecase.CreateContestInput{
			MatchID:  "m1",
			Name:     "Mega Contest",
			EntryFee: "50",
			MaxUsers: 4,
			PrizeDistribution: []usecase.PayoutInput{
				{Type: "single", Rank: 1, Amount: "100"},
				{Type: "range", FromRank: 2, ToRank: 4, Amount: "20"},
			},
		}

		// Act
		contest, err := f.service.CreateContest(ctx, input)

		// Assert
		require.NoError(t, err)
		assert.NotEmpty(t, contest.ID)
		assert.Equal(t, entity.ContestOpen, contest.Status)
		assert.Equal(t, int64(5000), contest.EntryFee)
		assert.Equal(t, int64(20000), contest.PrizePool)
		assert.Equal(t, int64(10000), contest.PrizeDistribution.PayoutForRank(1))
		assert.Equal(t, int64(2000), contest.PrizeDistribution.PayoutForRank(3))

		stored := f.contest(t, contest.ID)
		assert.Equal(t, "Mega Contest", stored.Name)
	})

	t.Run("should reject invalid input", func(t *testing.T) {
		// Arrange
		f := newContestFixture(t, nil)
		f.seedMatch(t, "m1", 24*time.Hour)

		testCases := []struct {
			name  string
			input usecase.CreateContestInput
			want  error
		}{
			{
				name:  "Non numeric fee",
				input: usecase.CreateContestInput{MatchID: "m1", Name: "Mega", EntryFee: "ten", MaxUsers: 2},
				want:  errs.ErrInvalidAmount,
			},
			{
				name:  "Zero capacity",
				input: usecase.CreateContestInput{MatchID: "m1", Name: "Mega", EntryFee: "10", MaxUsers: 0},
				want:  errs.ErrInvalidRequest,
			},
			{
				name:  "Unknown match",
				input: usecase.CreateContestInput{MatchID: "missing", Name: "Mega", EntryFee: "10", MaxUsers: 2},
				want:  errs.ErrMatchNotFound,
			},
			{
				name: "Unknown payout type",
				input: usecase.CreateContestInput{MatchID: "m1", Name: "Mega", EntryFee: "10", MaxUsers: 2,
					PrizeDistribution: []usecase.PayoutInput{{Type: "bonus", Rank: 1, Amount: "5"}}},
				want: errs.ErrInvalidPrizeDistribution,
			},
			{
				name: "Payouts above the pool",
				input: usecase.CreateContestInput{MatchID: "m1", Name: "Mega", EntryFee: "10", MaxUsers: 2,
					PrizeDistribution: []usecase.PayoutInput{{Type: "single", Rank: 1, Amount: "20.01"}}},
				want: errs.ErrInvalidPrizeDistribution,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				// Act
				contest, err := f.service.CreateContest(ctx, tc.input)

				// Assert
				assert.Nil(t, contest)
				assert.ErrorIs(t, err, tc.want)
			})
		}
	})

	t.Run("should reject a match that is no longer upcoming", func(t *testing.T) {
		// Arrange
		f := newContestFixture(t, nil)
		f.seedMatch(t, "m1", 24*time.Hour)
		_, err := f.store.GetMatchRepository(ctx).UpdateStatus(ctx, "m1", entity.MatchLive, entity.MatchUpcoming)
		require.NoError(t, err)

		// Act
		_, err = f.service.CreateContest(ctx, usecase.CreateContestInput{MatchID: "m1", Name: "Mega", EntryFee: "10", MaxUsers: 2})

		// Assert
		assert.ErrorIs(t, err, errs.ErrMatchNotUpcoming)
	})
}

func TestService_ListContests(t *testing.T) {
	ctx := context.Background()
	f := newContestFixture(t, nil)
	f.seedMatch(t, "m1", 24*time.Hour)
	f.seedMatch(t, "m2", 48*time.Hour)
	f.seedContest(t, "c1", "m1", 1000, 10)
	f.seedContest(t, "c2", "m1", 0, 10)
	f.seedContest(t, "c3", "m2", 1000, 10)
	_, err := f.service.CancelContest(ctx, "c2")
	require.NoError(t, err)

	ids := func(list []*entity.Contest) []string {
		out := make([]string, 0, len(list))
		for _, c := range list {
			out = append(out, c.ID)
		}
		return out
	}

	t.Run("should filter by match", func(t *testing.T) {
		list, err := f.service.ListContests(ctx, usecase.ContestListFilter{MatchID: "m1"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"c1", "c2"}, ids(list))
	})

	t.Run("should filter by status", func(t *testing.T) {
		list, err := f.service.ListContests(ctx, usecase.ContestListFilter{Status: "open"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"c1", "c3"}, ids(list))
	})

	t.Run("should reject an unknown status", func(t *testing.T) {
		_, err := f.service.ListContests(ctx, usecase.ContestListFilter{Status: "paused"})
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestService_CancelContest(t *testing.T) {
	ctx := context.Background()

	t.Run("should refund every entry", func(t *testing.T) {
		// Arrange
		f := newContestFixture(t, nil)
		f.seedMatch(t, "m1", 24*time.Hour)
		f.seedContest(t, "c1", "m1", 1500, 10)
		for _, id := range []string{"u1", "u2", "u3"} {
			f.seedUser(t, id, 2000)
			f.seedTeam(t, "t-"+id, id, "m1")
			_, err := f.service.JoinContest(ctx, id, "c1", "t-"+id)
			require.NoError(t, err)
		}

		// Act
		refunded, err := f.service.CancelContest(ctx, "c1")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 3, refunded)
		assert.Equal(t, entity.ContestCancelled, f.contest(t, "c1").Status)
		for _, id := range []string{"u1", "u2", "u3"} {
			assert.Equal(t, int64(2000), f.balance(t, id), id)

			history, err := f.store.GetTransactionRepository(ctx).ListByUser(ctx, id, 10)
			require.NoError(t, err)
			require.Len(t, history, 2)
			assert.Equal(t, entity.TypeContestRefund, history[0].Type)
			assert.Equal(t, int64(1500), history[0].Amount)
		}
	})

	t.Run("should not refund a free contest", func(t *testing.T) {
		// Arrange
		f := newContestFixture(t, nil)
		f.seedMatch(t, "m1", 24*time.Hour)
		f.seedContest(t, "c1", "m1", 0, 10)
		f.seedUser(t, "u1", 0)
		f.seedTeam(t, "t1", "u1", "m1")
		_, err := f.service.JoinContest(ctx, "u1", "c1", "t1")
		require.NoError(t, err)

		// Act
		refunded, err := f.service.CancelContest(ctx, "c1")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 0, refunded)
		assert.Equal(t, int64(0), f.balance(t, "u1"))
	})

	t.Run("should reject a terminal contest", func(t *testing.T) {
		// Arrange
		f := newContestFixture(t, nil)
		f.seedMatch(t, "m1", 24*time.Hour)
		f.seedContest(t, "c1", "m1", 1000, 10)
		_, err := f.service.CancelContest(ctx, "c1")
		require.NoError(t, err)

		// Act
		_, err = f.service.CancelContest(ctx, "c1")

		// Assert
		assert.ErrorIs(t, err, errs.ErrInvalidContestState)
	})

	t.Run("should report a missing contest", func(t *testing.T) {
		f := newContestFixture(t, nil)
		_, err := f.service.CancelContest(ctx, "missing")
		assert.ErrorIs(t, err, errs.ErrContestNotFound)
	})

	t.Run("should invalidate the cached leaderboard", func(t *testing.T) {
		// Arrange
		lc := mockpersistence.NewMockLeaderboardCache(t)
		lc.EXPECT().Invalidate(mock.Anything, "c1").Return(nil).Once()
		f := newContestFixture(t, lc)
		f.seedMatch(t, "m1", 24*time.Hour)
		f.seedContest(t, "c1", "m1", 1000, 10)

		// Act
		_, err := f.service.CancelContest(ctx, "c1")

		// Assert
		require.NoError(t, err)
	})
}

func TestService_ListMyContests(t *testing.T) {
	ctx := context.Background()

	t.Run("should return joined contests with match and team", func(t *testing.T) {
		// Arrange
		f := newContestFixture(t, nil)
		f.seedUser(t, "u1", 5000)
		f.seedUser(t, "u2", 5000)
		f.seedMatch(t, "m1", 24*time.Hour)
		f.seedContest(t, "c1", "m1", 1000, 10)
		f.seedContest(t, "c2", "m1", 1000, 10)
		f.seedTeam(t, "t1", "u1", "m1")
		f.seedTeam(t, "t2", "u2", "m1")
		_, err := f.service.JoinContest(ctx, "u1", "c1", "t1")
		require.NoError(t, err)
		_, err = f.service.JoinContest(ctx, "u2", "c2", "t2")
		require.NoError(t, err)

		// Act
		mine, err := f.service.ListMyContests(ctx, "u1")

		// Assert
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, "c1", mine[0].Contest.ID)
		assert.Equal(t, "m1", mine[0].Match.ID)
		assert.Equal(t, "t1", mine[0].Team.ID)
		assert.Equal(t, "u1", mine[0].Entry.UserID)
	})

	t.Run("should return an empty list for a user with no entries", func(t *testing.T) {
		f := newContestFixture(t, nil)
		mine, err := f.service.ListMyContests(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, mine)
	})
}
