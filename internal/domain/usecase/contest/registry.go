package contest

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/usecase/wallet"
)

// Registry owns contest creation and the lifecycle transitions that are not driven by joins
type Registry struct {
	uow          persistence.UnitOfWork
	ledger       *wallet.Ledger
	cache        persistence.LeaderboardCache
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewRegistry creates a new Registry
func NewRegistry(
	uow persistence.UnitOfWork,
	ledger *wallet.Ledger,
	cache persistence.LeaderboardCache,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Registry {
	return &Registry{
		uow:          uow,
		ledger:       ledger,
		cache:        cache,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateContest opens a contest for an upcoming match
func (r *Registry) CreateContest(ctx context.Context, input usecase.CreateContestInput) (*entity.Contest, error) {
	entryFee, err := entity.ParseAmount(input.EntryFee)
	if err != nil {
		return nil, err
	}

	dist, err := parsePrizeDistribution(input.PrizeDistribution)
	if err != nil {
		return nil, err
	}

	match, err := r.uow.GetMatchRepository(ctx).GetByID(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}
	if match.Status != entity.MatchUpcoming {
		return nil, errs.ErrMatchNotUpcoming
	}

	contest, err := entity.NewContest(
		r.idGenerator.NewID(),
		match.ID,
		input.Name,
		entryFee,
		input.MaxUsers,
		dist,
		r.timeProvider.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err := r.uow.GetContestRepository(ctx).Create(ctx, contest); err != nil {
		return nil, err
	}

	r.logger.Info("Contest created", map[string]any{
		"contest_id": contest.ID,
		"match_id":   contest.MatchID,
		"entry_fee":  entity.FormatAmount(contest.EntryFee),
		"max_users":  contest.MaxUsers,
		"prize_pool": entity.FormatAmount(contest.PrizePool),
	})
	return contest, nil
}

// GetContest returns a contest by id
func (r *Registry) GetContest(ctx context.Context, id string) (*entity.Contest, error) {
	return r.uow.GetContestRepository(ctx).GetByID(ctx, id)
}

// ListContests returns contests matching the filter
func (r *Registry) ListContests(ctx context.Context, filter usecase.ContestListFilter) ([]*entity.Contest, error) {
	if filter.Status != "" && !entity.IsValidContestStatus(filter.Status) {
		return nil, fmt.Errorf("%w: unknown contest status %q", errs.ErrInvalidRequest, filter.Status)
	}
	return r.uow.GetContestRepository(ctx).List(ctx, persistence.ContestFilter{
		MatchID: filter.MatchID,
		Status:  entity.ContestStatus(filter.Status),
	})
}

// CancelContest cancels the contest and refunds every entry in one transaction
func (r *Registry) CancelContest(ctx context.Context, id string) (int, error) {
	var refunded int
	err := r.uow.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error
		refunded, err = r.cancelInTx(txCtx, id)
		return err
	})
	if err != nil {
		return 0, err
	}

	r.invalidate(ctx, id)
	r.logger.Info("Contest cancelled", map[string]any{
		"contest_id":       id,
		"refunded_entries": refunded,
	})
	return refunded, nil
}

// MoveStatus applies a lifecycle transition if the contest is still in one of the from statuses
func (r *Registry) MoveStatus(ctx context.Context, id string, to entity.ContestStatus, from ...entity.ContestStatus) (bool, error) {
	moved, err := r.uow.GetContestRepository(ctx).UpdateStatus(ctx, id, to, from...)
	if err != nil {
		return false, err
	}
	if moved {
		r.invalidate(ctx, id)
		r.logger.Info("Contest status changed", map[string]any{
			"contest_id": id,
			"to":         string(to),
		})
	}
	return moved, nil
}

func (r *Registry) cancelInTx(txCtx context.Context, id string) (int, error) {
	contests := r.uow.GetContestRepository(txCtx)

	contest, err := contests.GetByID(txCtx, id)
	if err != nil {
		return 0, err
	}
	if !contest.CanTransitionTo(entity.ContestCancelled) {
		return 0, errs.ErrInvalidContestState
	}

	moved, err := contests.UpdateStatus(txCtx, id, entity.ContestCancelled, contest.Status)
	if err != nil {
		return 0, err
	}
	if !moved {
		return 0, errs.ErrConcurrentUpdate
	}

	if contest.EntryFee == 0 {
		return 0, nil
	}

	entries, err := r.uow.GetContestEntryRepository(txCtx).ListByContest(txCtx, id)
	if err != nil {
		return 0, err
	}
	for _, e := range entries {
		if _, err := r.ledger.Refund(txCtx, e.UserID, contest); err != nil {
			return 0, err
		}
	}
	return len(entries), nil
}

func (r *Registry) invalidate(ctx context.Context, contestID string) {
	if err := r.cache.Invalidate(ctx, contestID); err != nil {
		r.logger.Warn("Failed to invalidate leaderboard cache", map[string]any{
			"contest_id": contestID,
			"error":      err.Error(),
		})
	}
}
