package contest

import (
	"context"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/usecase/wallet"
)

// JoinOrchestrator enters a team into a contest. The fee debit, its transaction, the entry
// and the seat increment are written in one storage transaction, so either all of them
// happen or none do.
type JoinOrchestrator struct {
	uow          persistence.UnitOfWork
	ledger       *wallet.Ledger
	cache        persistence.LeaderboardCache
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewJoinOrchestrator creates a new JoinOrchestrator
func NewJoinOrchestrator(
	uow persistence.UnitOfWork,
	ledger *wallet.Ledger,
	cache persistence.LeaderboardCache,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *JoinOrchestrator {
	return &JoinOrchestrator{
		uow:          uow,
		ledger:       ledger,
		cache:        cache,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Join checks the preconditions against fresh state and then charges and records the entry.
// Preconditions are checked in this order:
//  1. the contest exists
//  2. it is open and has a free seat
//  3. the user has not joined yet
//  4. the team exists, belongs to the user and is for the contest's match
//  5. the wallet covers the entry fee
func (j *JoinOrchestrator) Join(ctx context.Context, userID, contestID, teamID string) (*entity.ContestEntry, error) {
	var entry *entity.ContestEntry
	var contest *entity.Contest

	err := j.uow.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error
		contest, err = j.checkPreconditions(txCtx, userID, contestID, teamID)
		if err != nil {
			return err
		}

		if contest.EntryFee > 0 {
			if _, err := j.ledger.ChargeEntryFee(txCtx, userID, contest); err != nil {
				return err
			}
		}

		entry = entity.NewContestEntry(j.idGenerator.NewID(), contestID, userID, teamID, j.timeProvider.Now())
		if err := j.uow.GetContestEntryRepository(txCtx).Create(txCtx, entry); err != nil {
			return err
		}

		contest, err = j.uow.GetContestRepository(txCtx).IncrementJoined(txCtx, contestID)
		return err
	})
	if err != nil {
		fields := errs.LogFields(err)
		fields["user_id"] = userID
		fields["contest_id"] = contestID
		fields["team_id"] = teamID
		j.logger.Info("Contest join rejected", fields)
		return nil, err
	}

	if err := j.cache.Invalidate(ctx, contestID); err != nil {
		j.logger.Warn("Failed to invalidate leaderboard cache", map[string]any{
			"contest_id": contestID,
			"error":      err.Error(),
		})
	}

	j.logger.Info("Contest joined", map[string]any{
		"entry_id":     entry.ID,
		"user_id":      userID,
		"contest_id":   contestID,
		"team_id":      teamID,
		"joined_users": contest.JoinedUsers,
		"status":       string(contest.Status),
	})
	return entry, nil
}

func (j *JoinOrchestrator) checkPreconditions(txCtx context.Context, userID, contestID, teamID string) (*entity.Contest, error) {
	contest, err := j.uow.GetContestRepository(txCtx).GetByID(txCtx, contestID)
	if err != nil {
		return nil, err
	}
	if err := contest.CheckJoinable(); err != nil {
		return nil, err
	}

	joined, err := j.uow.GetContestEntryRepository(txCtx).Exists(txCtx, contestID, userID)
	if err != nil {
		return nil, err
	}
	if joined {
		return nil, errs.ErrAlreadyJoined
	}

	team, err := j.uow.GetTeamRepository(txCtx).GetByID(txCtx, teamID)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, errs.ErrTeamNotOwned
		}
		return nil, err
	}
	if !team.IsOwnedBy(userID) {
		return nil, errs.ErrTeamNotOwned
	}
	if team.MatchID != contest.MatchID {
		return nil, errs.ErrTeamWrongMatch
	}

	user, err := j.uow.GetUserRepository(txCtx).GetByID(txCtx, userID)
	if err != nil {
		return nil, err
	}
	if !user.CanAfford(contest.EntryFee) {
		return nil, errs.NewInsufficientFundsError(userID,
			entity.FormatAmount(contest.EntryFee), user.FormattedBalance())
	}

	return contest, nil
}
