package dto

import (
	"time"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/usecase"
)

// PayoutRequest is one line of a prize distribution.
// A "single" payout uses rank; a "range" payout uses from_rank and to_rank.
type PayoutRequest struct {
	Type     string `json:"type" binding:"required"`
	Rank     int    `json:"rank"`
	FromRank int    `json:"from_rank"`
	ToRank   int    `json:"to_rank"`
	Amount   Amount `json:"amount" binding:"required"`
}

// CreateContestRequest is the body of POST /contests
type CreateContestRequest struct {
	MatchID           string          `json:"match_id" binding:"required"`
	Name              string          `json:"name" binding:"required"`
	EntryFee          Amount          `json:"entry_fee"`
	MaxUsers          int             `json:"max_users" binding:"required"`
	PrizeDistribution []PayoutRequest `json:"prize_distribution"`
}

// JoinContestRequest is the body of POST /contests/:id/join
type JoinContestRequest struct {
	ContestID string `json:"contest_id"`
	TeamID    string `json:"team_id" binding:"required"`
}

type PayoutResponse struct {
	Type     string `json:"type"`
	FromRank int    `json:"from_rank"`
	ToRank   int    `json:"to_rank"`
	Amount   string `json:"amount"`
}

type ContestResponse struct {
	ID                string           `json:"id"`
	MatchID           string           `json:"match_id"`
	Name              string           `json:"name"`
	EntryFee          string           `json:"entry_fee"`
	PrizePool         string           `json:"prize_pool"`
	MaxUsers          int              `json:"max_users"`
	JoinedUsers       int              `json:"joined_users"`
	Status            string           `json:"status"`
	PrizeDistribution []PayoutResponse `json:"prize_distribution"`
	CreatedAt         time.Time        `json:"created_at"`
}

type ContestListResponse struct {
	Contests []ContestResponse `json:"contests"`
}

type CancelContestResponse struct {
	Success         bool `json:"success"`
	RefundedEntries int  `json:"refunded_entries"`
}

type ContestEntryResponse struct {
	ID        string    `json:"id"`
	ContestID string    `json:"contest_id"`
	UserID    string    `json:"user_id"`
	TeamID    string    `json:"team_id"`
	Rank      *int      `json:"rank"`
	Winnings  string    `json:"winnings"`
	CreatedAt time.Time `json:"created_at"`
}

type JoinContestResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Entry   ContestEntryResponse `json:"entry"`
}

type MyContestResponse struct {
	Contest ContestResponse      `json:"contest"`
	Match   *MatchResponse       `json:"match"`
	Entry   ContestEntryResponse `json:"entry"`
	Team    *TeamResponse        `json:"team"`
}

type MyContestsResponse struct {
	MyContests []MyContestResponse `json:"my_contests"`
}

type LeaderboardEntryResponse struct {
	Rank        int    `json:"rank"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	TeamID      string `json:"team_id"`
	TeamName    string `json:"team_name"`
	TotalPoints string `json:"total_points"`
	Winnings    string `json:"winnings"`
}

type LeaderboardResponse struct {
	ContestID    string                     `json:"contest_id"`
	MatchID      string                     `json:"match_id"`
	Entries      []LeaderboardEntryResponse `json:"entries"`
	TotalEntries int                        `json:"total_entries"`
	PrizePool    string                     `json:"prize_pool"`
}

// ToInput converts the request into the use case input
func (r CreateContestRequest) ToInput() usecase.CreateContestInput {
	payouts := make([]usecase.PayoutInput, 0, len(r.PrizeDistribution))
	for _, p := range r.PrizeDistribution {
		payouts = append(payouts, usecase.PayoutInput{
			Type:     p.Type,
			Rank:     p.Rank,
			FromRank: p.FromRank,
			ToRank:   p.ToRank,
			Amount:   p.Amount.String(),
		})
	}

	fee := r.EntryFee.String()
	if fee == "" {
		fee = "0"
	}
	return usecase.CreateContestInput{
		MatchID:           r.MatchID,
		Name:              r.Name,
		EntryFee:          fee,
		MaxUsers:          r.MaxUsers,
		PrizeDistribution: payouts,
	}
}

// NewContestResponse converts a contest entity
func NewContestResponse(c *entity.Contest) ContestResponse {
	payouts := make([]PayoutResponse, 0, len(c.PrizeDistribution))
	for _, p := range c.PrizeDistribution {
		payouts = append(payouts, PayoutResponse{
			Type:     string(p.Kind),
			FromRank: p.FromRank,
			ToRank:   p.ToRank,
			Amount:   entity.FormatAmount(p.Amount),
		})
	}

	return ContestResponse{
		ID:                c.ID,
		MatchID:           c.MatchID,
		Name:              c.Name,
		EntryFee:          entity.FormatAmount(c.EntryFee),
		PrizePool:         entity.FormatAmount(c.PrizePool),
		MaxUsers:          c.MaxUsers,
		JoinedUsers:       c.JoinedUsers,
		Status:            string(c.Status),
		PrizeDistribution: payouts,
		CreatedAt:         c.CreatedAt,
	}
}

// NewContestListResponse converts a list of contests
func NewContestListResponse(contests []*entity.Contest) ContestListResponse {
	out := ContestListResponse{Contests: make([]ContestResponse, 0, len(contests))}
	for _, c := range contests {
		out.Contests = append(out.Contests, NewContestResponse(c))
	}
	return out
}

// NewContestEntryResponse converts a contest entry
func NewContestEntryResponse(e *entity.ContestEntry) ContestEntryResponse {
	return ContestEntryResponse{
		ID:        e.ID,
		ContestID: e.ContestID,
		UserID:    e.UserID,
		TeamID:    e.TeamID,
		Rank:      e.Rank,
		Winnings:  entity.FormatAmount(e.Winnings),
		CreatedAt: e.CreatedAt,
	}
}

// NewMyContestsResponse converts the joined contests of a user. Match and team may be missing.
func NewMyContestsResponse(items []*entity.MyContest) MyContestsResponse {
	out := MyContestsResponse{MyContests: make([]MyContestResponse, 0, len(items))}
	for _, item := range items {
		resp := MyContestResponse{
			Contest: NewContestResponse(item.Contest),
			Entry:   NewContestEntryResponse(item.Entry),
		}
		if item.Match != nil {
			m := NewMatchResponse(item.Match)
			resp.Match = &m
		}
		if item.Team != nil {
			t := NewTeamResponse(item.Team)
			resp.Team = &t
		}
		out.MyContests = append(out.MyContests, resp)
	}
	return out
}

// NewLeaderboardResponse converts a leaderboard
func NewLeaderboardResponse(b *entity.Leaderboard) LeaderboardResponse {
	entries := make([]LeaderboardEntryResponse, 0, len(b.Entries))
	for _, e := range b.Entries {
		entries = append(entries, LeaderboardEntryResponse{
			Rank:        e.Rank,
			UserID:      e.UserID,
			Username:    e.Username,
			TeamID:      e.TeamID,
			TeamName:    e.TeamName,
			TotalPoints: e.TotalPoints.String(),
			Winnings:    entity.FormatAmount(e.Winnings),
		})
	}

	return LeaderboardResponse{
		ContestID:    b.ContestID,
		MatchID:      b.MatchID,
		Entries:      entries,
		TotalEntries: b.TotalEntries,
		PrizePool:    entity.FormatAmount(b.PrizePool),
	}
}
