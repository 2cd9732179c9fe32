package dto

import (
	"time"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/usecase"
)

type TeamPlayerRequest struct {
	PlayerID      string `json:"player_id" binding:"required"`
	IsCaptain     bool   `json:"is_captain"`
	IsViceCaptain bool   `json:"is_vice_captain"`
}

// CreateTeamRequest is the body of POST /teams. The size rule is checked by the use case.
type CreateTeamRequest struct {
	MatchID  string              `json:"match_id" binding:"required"`
	TeamName string              `json:"team_name"`
	Players  []TeamPlayerRequest `json:"players" binding:"required,dive"`
}

type TeamPlayerResponse struct {
	PlayerID      string `json:"player_id"`
	IsCaptain     bool   `json:"is_captain"`
	IsViceCaptain bool   `json:"is_vice_captain"`
}

type TeamResponse struct {
	ID          string               `json:"id"`
	UserID      string               `json:"user_id"`
	MatchID     string               `json:"match_id"`
	TeamName    string               `json:"team_name"`
	Players     []TeamPlayerResponse `json:"players"`
	TotalPoints string               `json:"total_points"`
	CreatedAt   time.Time            `json:"created_at"`
}

type TeamListResponse struct {
	Teams []TeamResponse `json:"teams"`
}

// ToInput converts the request into the use case input
func (r CreateTeamRequest) ToInput() usecase.CreateTeamInput {
	players := make([]entity.PlayerSelection, 0, len(r.Players))
	for _, p := range r.Players {
		players = append(players, entity.PlayerSelection{
			PlayerID:      p.PlayerID,
			IsCaptain:     p.IsCaptain,
			IsViceCaptain: p.IsViceCaptain,
		})
	}
	return usecase.CreateTeamInput{
		MatchID:  r.MatchID,
		TeamName: r.TeamName,
		Players:  players,
	}
}

// NewTeamResponse converts a team entity
func NewTeamResponse(t *entity.Team) TeamResponse {
	players := make([]TeamPlayerResponse, 0, len(t.Players))
	for _, p := range t.Players {
		players = append(players, TeamPlayerResponse{
			PlayerID:      p.PlayerID,
			IsCaptain:     p.IsCaptain,
			IsViceCaptain: p.IsViceCaptain,
		})
	}

	return TeamResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		MatchID:     t.MatchID,
		TeamName:    t.TeamName,
		Players:     players,
		TotalPoints: t.TotalPoints.String(),
		CreatedAt:   t.CreatedAt,
	}
}

// NewTeamListResponse converts a list of teams
func NewTeamListResponse(teams []*entity.Team) TeamListResponse {
	out := TeamListResponse{Teams: make([]TeamResponse, 0, len(teams))}
	for _, t := range teams {
		out.Teams = append(out.Teams, NewTeamResponse(t))
	}
	return out
}
