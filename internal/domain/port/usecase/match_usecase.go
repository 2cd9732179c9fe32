package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
)

// CreateMatchInput describes a new fixture
type CreateMatchInput struct {
	Title     string
	Team1     string
	Team2     string
	StartTime time.Time
	Venue     string
	MatchType string
}

// CreatePlayerInput lists a player for a match. BasePrice is a decimal credit string.
type CreatePlayerInput struct {
	MatchID   string
	Name      string
	Role      string
	Team      string
	BasePrice string
	ImageURL  string
}

// MatchUseCase defines fixture and player catalogue operations
type MatchUseCase interface {
	CreateMatch(ctx context.Context, input CreateMatchInput) (*entity.Match, error)
	GetMatch(ctx context.Context, id string) (*entity.Match, error)
	GetMatchBySlug(ctx context.Context, slug string) (*entity.Match, error)
	// ListMatches returns matches by start time; an empty status lists all of them
	ListMatches(ctx context.Context, status string) ([]*entity.Match, error)
	// UpdateMatchStatus records a status change reported by the match feed
	UpdateMatchStatus(ctx context.Context, id string, status string) (*entity.Match, error)

	CreatePlayer(ctx context.Context, input CreatePlayerInput) (*entity.Player, error)
	ListPlayers(ctx context.Context, matchID string) ([]*entity.Player, error)
}
