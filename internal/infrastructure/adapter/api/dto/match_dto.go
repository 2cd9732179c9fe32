package dto

import (
	"time"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
)

// CreateMatchRequest is the body of POST /matches
type CreateMatchRequest struct {
	Title     string    `json:"title" binding:"required"`
	Team1     string    `json:"team1" binding:"required"`
	Team2     string    `json:"team2" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	Venue     string    `json:"venue"`
	MatchType string    `json:"match_type" binding:"required"`
}

// UpdateMatchStatusRequest is the body of PUT /matches/:id/status
type UpdateMatchStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreatePlayerRequest is the body of POST /players
type CreatePlayerRequest struct {
	MatchID   string `json:"match_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Role      string `json:"role" binding:"required"`
	Team      string `json:"team" binding:"required"`
	BasePrice Amount `json:"base_price" binding:"required"`
	ImageURL  string `json:"image_url"`
}

type MatchResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Team1     string    `json:"team1"`
	Team2     string    `json:"team2"`
	StartTime time.Time `json:"start_time"`
	Venue     string    `json:"venue"`
	MatchType string    `json:"match_type"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type MatchListResponse struct {
	Matches []MatchResponse `json:"matches"`
}

type PlayerResponse struct {
	ID            string `json:"id"`
	MatchID       string `json:"match_id"`
	Name          string `json:"name"`
	Role          string `json:"role"`
	Team          string `json:"team"`
	BasePrice     string `json:"base_price"`
	CurrentPoints string `json:"current_points"`
	ImageURL      string `json:"image_url,omitempty"`
}

type PlayerListResponse struct {
	Players []PlayerResponse `json:"players"`
}

// NewMatchResponse converts a match entity
func NewMatchResponse(m *entity.Match) MatchResponse {
	return MatchResponse{
		ID:        m.ID,
		Title:     m.Title,
		Slug:      m.Slug,
		Team1:     m.Team1,
		Team2:     m.Team2,
		StartTime: m.StartTime,
		Venue:     m.Venue,
		MatchType: m.MatchType,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

// NewMatchListResponse converts a list of matches
func NewMatchListResponse(matches []*entity.Match) MatchListResponse {
	out := MatchListResponse{Matches: make([]MatchResponse, 0, len(matches))}
	for _, m := range matches {
		out.Matches = append(out.Matches, NewMatchResponse(m))
	}
	return out
}

// NewPlayerResponse converts a player entity
func NewPlayerResponse(p *entity.Player) PlayerResponse {
	return PlayerResponse{
		ID:            p.ID,
		MatchID:       p.MatchID,
		Name:          p.Name,
		Role:          string(p.Role),
		Team:          p.Team,
		BasePrice:     p.BasePrice.String(),
		CurrentPoints: p.CurrentPoints.String(),
		ImageURL:      p.ImageURL,
	}
}

// NewPlayerListResponse converts a list of players
func NewPlayerListResponse(players []*entity.Player) PlayerListResponse {
	out := PlayerListResponse{Players: make([]PlayerResponse, 0, len(players))}
	for _, p := range players {
		out.Players = append(out.Players, NewPlayerResponse(p))
	}
	return out
}
