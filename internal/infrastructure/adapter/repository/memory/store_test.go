package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/logger"
	clock "github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/time"
)

var start = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestStore() (*Store, *clock.ManualClock) {
	tp := clock.NewManualClock(start)
	tp.Step = time.Second
	return NewStore(tp, logger.NewNoopLogger()), tp
}

func seedUser(t *testing.T, s *Store, id, username string, balance int64) {
	t.Helper()
	ctx := context.Background()
	user, err := entity.NewUser(id, username, username+"@example.com", "hash", entity.RoleUser, s.timeProvider)
	require.NoError(t, err)
	require.NoError(t, s.GetUserRepository(ctx).Create(ctx, user))
	if balance > 0 {
		_, err = s.GetUserRepository(ctx).Credit(ctx, id, balance)
		require.NoError(t, err)
	}
}

func seedContest(t *testing.T, s *Store, id string, maxUsers int) {
	t.Helper()
	ctx := context.Background()
	match, err := entity.NewMatch("m-"+id, "Final "+id, "India", "Australia", "MCG", entity.FormatT20, start.Add(24*time.Hour), start)
	require.NoError(t, err)
	require.NoError(t, s.GetMatchRepository(ctx).Create(ctx, match))

	contest, err := entity.NewContest(id, match.ID, "Mega", 1000, maxUsers, nil, s.timeProvider.Now())
	require.NoError(t, err)
	require.NoError(t, s.GetContestRepository(ctx).Create(ctx, contest))
}

func TestStoreTransactions(t *testing.T) {
	ctx := context.Background()

	t.Run("Rollback restores every write", func(t *testing.T) {
		s, _ := newTestStore()
		seedUser(t, s, "u-1", "alice", 5000)
		boom := errors.New("boom")

		err := s.WithinTransaction(ctx, func(txCtx context.Context) error {
			_, err := s.GetUserRepository(txCtx).Debit(txCtx, "u-1", 2000)
			require.NoError(t, err)
			txn, err := entity.NewTransaction("t-1", "u-1", entity.TypeDeposit, 100, "", "", 3000, s.timeProvider)
			require.NoError(t, err)
			require.NoError(t, s.GetTransactionRepository(txCtx).Create(txCtx, txn))
			return boom
		})
		assert.ErrorIs(t, err, boom)

		user, err := s.GetUserRepository(ctx).GetByID(ctx, "u-1")
		require.NoError(t, err)
		assert.Equal(t, int64(5000), user.WalletBalance())

		history, err := s.GetTransactionRepository(ctx).ListByUser(ctx, "u-1", 10)
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("Panic rolls back and propagates", func(t *testing.T) {
		s, _ := newTestStore()
		seedUser(t, s, "u-1", "alice", 5000)

		assert.Panics(t, func() {
			_ = s.WithinTransaction(ctx, func(txCtx context.Context) error {
				_, _ = s.GetUserRepository(txCtx).Debit(txCtx, "u-1", 5000)
				panic("kaboom")
			})
		})

		user, err := s.GetUserRepository(ctx).GetByID(ctx, "u-1")
		require.NoError(t, err)
		assert.Equal(t, int64(5000), user.WalletBalance())

		// The store lock was released
		require.NoError(t, s.WithinTransaction(ctx, func(context.Context) error { return nil }))
	})

	t.Run("Nested call joins the outer transaction", func(t *testing.T) {
		s, _ := newTestStore()
		seedUser(t, s, "u-1", "alice", 5000)

		err := s.WithinTransaction(ctx, func(txCtx context.Context) error {
			require.NoError(t, s.WithinTransaction(txCtx, func(inner context.Context) error {
				_, err := s.GetUserRepository(inner).Debit(inner, "u-1", 1000)
				return err
			}))
			return errors.New("outer fails")
		})
		require.Error(t, err)

		user, err := s.GetUserRepository(ctx).GetByID(ctx, "u-1")
		require.NoError(t, err)
		assert.Equal(t, int64(5000), user.WalletBalance())
	})

	t.Run("Finished transaction cannot be committed again", func(t *testing.T) {
		s, _ := newTestStore()
		txCtx, err := s.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, s.Commit(txCtx))
		assert.Error(t, s.Commit(txCtx))
		assert.Error(t, s.Rollback(txCtx))
	})
}

func TestUserRepositoryBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("Debit refuses to overdraw", func(t *testing.T) {
		s, _ := newTestStore()
		seedUser(t, s, "u-1", "alice", 1000)
		users := s.GetUserRepository(ctx)

		_, err := users.Debit(ctx, "u-1", 1001)
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)

		balance, err := users.Debit(ctx, "u-1", 1000)
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)

		_, err = users.Debit(ctx, "missing", 1)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Concurrent debits never go negative", func(t *testing.T) {
		s, _ := newTestStore()
		seedUser(t, s, "u-1", "alice", 1000)

		var wg sync.WaitGroup
		var mu sync.Mutex
		succeeded := 0
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := s.WithinTransaction(ctx, func(txCtx context.Context) error {
					_, err := s.GetUserRepository(txCtx).Debit(txCtx, "u-1", 100)
					return err
				})
				if err == nil {
					mu.Lock()
					succeeded++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 10, succeeded)
		user, err := s.GetUserRepository(ctx).GetByID(ctx, "u-1")
		require.NoError(t, err)
		assert.Equal(t, int64(0), user.WalletBalance())
	})

	t.Run("Duplicate username or email", func(t *testing.T) {
		s, _ := newTestStore()
		seedUser(t, s, "u-1", "alice", 0)

		dup, err := entity.NewUser("u-2", "alice", "other@example.com", "hash", entity.RoleUser, s.timeProvider)
		require.NoError(t, err)
		assert.ErrorIs(t, s.GetUserRepository(ctx).Create(ctx, dup), errs.ErrDuplicateUser)

		exists, err := s.GetUserRepository(ctx).ExistsByUsernameOrEmail(ctx, "bob", "alice@example.com")
		require.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()
	seedUser(t, s, "u-1", "alice", 0)
	txns := s.GetTransactionRepository(ctx)

	for i, key := range []string{"k-1", "", ""} {
		txn, err := entity.NewTransaction("t-"+string(rune('a'+i)), "u-1", entity.TypeDeposit, 100, "", "", int64(100*(i+1)), s.timeProvider,
			entity.WithIdempotencyKey(key))
		require.NoError(t, err)
		require.NoError(t, txns.Create(ctx, txn))
	}

	t.Run("Idempotency key is unique per user", func(t *testing.T) {
		again, err := entity.NewTransaction("t-z", "u-1", entity.TypeDeposit, 100, "", "", 400, s.timeProvider,
			entity.WithIdempotencyKey("k-1"))
		require.NoError(t, err)
		assert.ErrorIs(t, txns.Create(ctx, again), errs.ErrDuplicateIdempotency)

		found, err := txns.FindByIdempotencyKey(ctx, "u-1", "k-1")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "t-a", found.ID)

		missing, err := txns.FindByIdempotencyKey(ctx, "u-2", "k-1")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("History is newest first and limited", func(t *testing.T) {
		history, err := txns.ListByUser(ctx, "u-1", 2)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, "t-c", history[0].ID)
		assert.Equal(t, "t-b", history[1].ID)
	})
}

func TestContestRepositoryIncrementJoined(t *testing.T) {
	ctx := context.Background()

	t.Run("Last seat flips the contest to full", func(t *testing.T) {
		s, _ := newTestStore()
		seedContest(t, s, "c-1", 2)
		contests := s.GetContestRepository(ctx)

		c, err := contests.IncrementJoined(ctx, "c-1")
		require.NoError(t, err)
		assert.Equal(t, 1, c.JoinedUsers)
		assert.Equal(t, entity.ContestOpen, c.Status)

		c, err = contests.IncrementJoined(ctx, "c-1")
		require.NoError(t, err)
		assert.Equal(t, 2, c.JoinedUsers)
		assert.Equal(t, entity.ContestFull, c.Status)

		_, err = contests.IncrementJoined(ctx, "c-1")
		assert.ErrorIs(t, err, errs.ErrContestNotOpen)

		_, err = contests.IncrementJoined(ctx, "missing")
		assert.ErrorIs(t, err, errs.ErrContestNotFound)
	})

	t.Run("Status compare and set", func(t *testing.T) {
		s, _ := newTestStore()
		seedContest(t, s, "c-1", 2)
		contests := s.GetContestRepository(ctx)

		moved, err := contests.UpdateStatus(ctx, "c-1", entity.ContestLive, entity.ContestFull)
		require.NoError(t, err)
		assert.False(t, moved)

		moved, err = contests.UpdateStatus(ctx, "c-1", entity.ContestLive, entity.ContestOpen, entity.ContestFull)
		require.NoError(t, err)
		assert.True(t, moved)

		live, err := contests.ListByMatch(ctx, "m-c-1", entity.ContestLive)
		require.NoError(t, err)
		assert.Len(t, live, 1)
	})

	t.Run("Match status takes the target first", func(t *testing.T) {
		s, _ := newTestStore()
		seedContest(t, s, "c-1", 2)
		matches := s.GetMatchRepository(ctx)

		moved, err := matches.UpdateStatus(ctx, "m-c-1", entity.MatchCompleted, entity.MatchLive)
		require.NoError(t, err)
		assert.False(t, moved)

		moved, err = matches.UpdateStatus(ctx, "m-c-1", entity.MatchLive, entity.MatchUpcoming)
		require.NoError(t, err)
		assert.True(t, moved)

		moved, err = matches.UpdateStatus(ctx, "m-c-1", entity.MatchCancelled, entity.MatchUpcoming, entity.MatchLive)
		require.NoError(t, err)
		assert.True(t, moved)

		m, err := matches.GetByID(ctx, "m-c-1")
		require.NoError(t, err)
		assert.Equal(t, entity.MatchCancelled, m.Status)
	})

	t.Run("One entry per user", func(t *testing.T) {
		s, _ := newTestStore()
		seedContest(t, s, "c-1", 5)
		entries := s.GetContestEntryRepository(ctx)

		require.NoError(t, entries.Create(ctx, entity.NewContestEntry("e-1", "c-1", "u-1", "t-1", start)))
		err := entries.Create(ctx, entity.NewContestEntry("e-2", "c-1", "u-1", "t-2", start))
		assert.ErrorIs(t, err, errs.ErrAlreadyJoined)

		require.NoError(t, entries.Create(ctx, entity.NewContestEntry("e-0", "c-1", "u-2", "t-3", start)))
		list, err := entries.ListByContest(ctx, "c-1")
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "e-0", list[0].ID)
	})
}

func TestStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()
	seedContest(t, s, "c-1", 5)

	c, err := s.GetContestRepository(ctx).GetByID(ctx, "c-1")
	require.NoError(t, err)
	c.JoinedUsers = 99

	again, err := s.GetContestRepository(ctx).GetByID(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, 0, again.JoinedUsers)
}
