package leaderboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/usecase"
)

// DefaultLookupConcurrency bounds the parallel team and user lookups of one build
const DefaultLookupConcurrency = 8

// Builder assembles contest leaderboards and caches the result
type Builder struct {
	uow         persistence.UnitOfWork
	cache       persistence.LeaderboardCache
	logger      coreport.Logger
	concurrency int
}

var _ usecase.LeaderboardUseCase = (*Builder)(nil)

// NewBuilder creates a new leaderboard builder. A concurrency below 1 uses DefaultLookupConcurrency.
func NewBuilder(uow persistence.UnitOfWork, cache persistence.LeaderboardCache, logger coreport.Logger, concurrency int) *Builder {
	if concurrency < 1 {
		concurrency = DefaultLookupConcurrency
	}
	return &Builder{
		uow:         uow,
		cache:       cache,
		logger:      logger,
		concurrency: concurrency,
	}
}

// GetLeaderboard returns the ranked entries of a contest. Ties keep join order.
func (b *Builder) GetLeaderboard(ctx context.Context, contestID string) (*entity.Leaderboard, error) {
	if cached, err := b.cache.Get(ctx, contestID); err != nil {
		b.logger.Warn("Leaderboard cache read failed", map[string]any{
			"contest_id": contestID,
			"error":      err.Error(),
		})
	} else if cached != nil {
		return cached, nil
	}

	contest, err := b.uow.GetContestRepository(ctx).GetByID(ctx, contestID)
	if err != nil {
		return nil, err
	}

	entries, err := b.uow.GetContestEntryRepository(ctx).ListByContest(ctx, contestID)
	if err != nil {
		return nil, err
	}

	rows, err := b.resolve(ctx, entries)
	if err != nil {
		return nil, err
	}
	entity.RankEntries(rows)

	board := &entity.Leaderboard{
		ContestID:    contest.ID,
		MatchID:      contest.MatchID,
		Entries:      rows,
		TotalEntries: len(rows),
		PrizePool:    contest.PrizePool,
	}

	if !b.unchangedSince(ctx, contest) {
		b.logger.Debug("Contest changed during leaderboard build, not caching", map[string]any{
			"contest_id": contestID,
		})
		return board, nil
	}
	if err := b.cache.Set(ctx, board); err != nil {
		b.logger.Warn("Leaderboard cache write failed", map[string]any{
			"contest_id": contestID,
			"error":      err.Error(),
		})
	}
	return board, nil
}

// unchangedSince reports whether the contest still has the seat count and status of snapshot.
// A board built across a join or cancel is returned but never cached.
func (b *Builder) unchangedSince(ctx context.Context, snapshot *entity.Contest) bool {
	current, err := b.uow.GetContestRepository(ctx).GetByID(ctx, snapshot.ID)
	if err != nil {
		return false
	}
	return current.JoinedUsers == snapshot.JoinedUsers && current.Status == snapshot.Status
}

// resolve looks up the team and user of every entry. Entries whose team or user
// no longer exists are dropped; input order is kept for the stable ranking.
func (b *Builder) resolve(ctx context.Context, entries []*entity.ContestEntry) ([]entity.LeaderboardEntry, error) {
	resolved := make([]*entity.LeaderboardEntry, len(entries))

	teams := b.uow.GetTeamRepository(ctx)
	users := b.uow.GetUserRepository(ctx)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)
	for i, e := range entries {
		g.Go(func() error {
			team, err := teams.GetByID(gctx, e.TeamID)
			if err != nil {
				if errs.IsNotFoundError(err) {
					return nil
				}
				return err
			}
			user, err := users.GetByID(gctx, e.UserID)
			if err != nil {
				if errs.IsNotFoundError(err) {
					return nil
				}
				return err
			}
			resolved[i] = &entity.LeaderboardEntry{
				UserID:      user.ID,
				Username:    user.Username,
				TeamID:      team.ID,
				TeamName:    team.TeamName,
				TotalPoints: team.TotalPoints,
				Winnings:    e.Winnings,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rows := make([]entity.LeaderboardEntry, 0, len(entries))
	for _, r := range resolved {
		if r != nil {
			rows = append(rows, *r)
		}
	}
	return rows, nil
}
