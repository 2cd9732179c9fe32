package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
)

// ContestStatus is the lifecycle state of a contest
type ContestStatus string

// Contest statuses
const (
	ContestOpen      ContestStatus = "open"
	ContestFull      ContestStatus = "full"
	ContestLive      ContestStatus = "live"
	ContestCompleted ContestStatus = "completed"
	ContestCancelled ContestStatus = "cancelled"
)

// MaxContestNameLength bounds the display name
const MaxContestNameLength = 100

// contestTransitions lists the explicit moves; open to full is driven by joins
var contestTransitions = map[ContestStatus][]ContestStatus{
	ContestOpen: {ContestFull, ContestLive, ContestCancelled},
	ContestFull: {ContestLive, ContestCancelled},
	ContestLive: {ContestCompleted, ContestCancelled},
}

// Contest is a paid competition for one match
type Contest struct {
	ID                string
	MatchID           string
	Name              string
	EntryFee          int64 // Cents
	PrizePool         int64 // Cents, entry fee times max users
	MaxUsers          int
	JoinedUsers       int
	Status            ContestStatus
	PrizeDistribution PrizeDistribution
	CreatedAt         time.Time
}

// NewContest builds an open contest and fixes its prize pool
func NewContest(
	id string,
	matchID string,
	name string,
	entryFee int64,
	maxUsers int,
	distribution PrizeDistribution,
	now time.Time,
) (*Contest, error) {
	name = strings.TrimSpace(name)

	switch {
	case matchID == "":
		return nil, fmt.Errorf("%w: match id is required", errs.ErrInvalidRequest)
	case name == "" || len(name) > MaxContestNameLength:
		return nil, fmt.Errorf("%w: contest name is required and must be at most %d characters",
			errs.ErrInvalidRequest, MaxContestNameLength)
	case entryFee < 0:
		return nil, errs.ErrNegativeAmount
	case maxUsers < 1:
		return nil, fmt.Errorf("%w: max users must be at least 1", errs.ErrInvalidRequest)
	}

	prizePool, ok := MultiplyAmount(entryFee, maxUsers)
	if !ok {
		return nil, fmt.Errorf("%w: prize pool overflows", errs.ErrInvalidAmount)
	}
	if err := distribution.Validate(maxUsers, prizePool); err != nil {
		return nil, err
	}

	return &Contest{
		ID:                id,
		MatchID:           matchID,
		Name:              name,
		EntryFee:          entryFee,
		PrizePool:         prizePool,
		MaxUsers:          maxUsers,
		Status:            ContestOpen,
		PrizeDistribution: distribution,
		CreatedAt:         now,
	}, nil
}

// CanJoin reports whether the contest accepts another entry
func (c *Contest) CanJoin() bool {
	return c.Status == ContestOpen && c.JoinedUsers < c.MaxUsers
}

// CheckJoinable returns the reason a join would be rejected, if any
func (c *Contest) CheckJoinable() error {
	if c.Status != ContestOpen {
		return errs.ErrContestNotOpen
	}
	if c.JoinedUsers >= c.MaxUsers {
		return errs.ErrContestFull
	}
	return nil
}

// IsTerminal reports whether the contest can no longer change state
func (c *Contest) IsTerminal() bool {
	return c.Status == ContestCompleted || c.Status == ContestCancelled
}

// CanTransitionTo reports whether moving to next is a legal lifecycle step
func (c *Contest) CanTransitionTo(next ContestStatus) bool {
	for _, allowed := range contestTransitions[c.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsValidContestStatus checks that status is a known contest status
func IsValidContestStatus(status string) bool {
	switch ContestStatus(status) {
	case ContestOpen, ContestFull, ContestLive, ContestCompleted, ContestCancelled:
		return true
	}
	return false
}
