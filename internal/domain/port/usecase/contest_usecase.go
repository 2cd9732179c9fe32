package usecase

import (
	"context"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
)

// PayoutInput is one line of a prize distribution request.
// Type "single" uses Rank; type "range" uses FromRank and ToRank.
type PayoutInput struct {
	Type     string
	Rank     int
	FromRank int
	ToRank   int
	Amount   string
}

// CreateContestInput describes a new contest. EntryFee is a decimal string.
type CreateContestInput struct {
	MatchID           string
	Name              string
	EntryFee          string
	MaxUsers          int
	PrizeDistribution []PayoutInput
}

// ContestListFilter narrows the public contest listing
type ContestListFilter struct {
	MatchID string
	Status  string
}

// ContestUseCase defines contest operations
type ContestUseCase interface {
	CreateContest(ctx context.Context, input CreateContestInput) (*entity.Contest, error)
	GetContest(ctx context.Context, id string) (*entity.Contest, error)
	ListContests(ctx context.Context, filter ContestListFilter) ([]*entity.Contest, error)
	// CancelContest cancels a non-terminal contest and refunds every entry. It returns the number of refunds.
	CancelContest(ctx context.Context, id string) (int, error)
	// JoinContest enters the user's team into the contest and charges the entry fee
	JoinContest(ctx context.Context, userID, contestID, teamID string) (*entity.ContestEntry, error)
	ListMyContests(ctx context.Context, userID string) ([]*entity.MyContest, error)
}

// LeaderboardUseCase defines leaderboard reads
type LeaderboardUseCase interface {
	GetLeaderboard(ctx context.Context, contestID string) (*entity.Leaderboard, error)
}

// SyncReport counts the changes made by one lifecycle pass
type SyncReport struct {
	MatchesStarted    int
	ContestsLive      int
	ContestsCompleted int
	ContestsCancelled int
}

// LifecycleUseCase keeps contest status in step with match status
type LifecycleUseCase interface {
	SyncWithMatches(ctx context.Context) (*SyncReport, error)
}
