package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
)

// PlayerRole is the on-field role a player is drafted for
type PlayerRole string

// Player roles
const (
	RoleBatsman      PlayerRole = "batsman"
	RoleBowler       PlayerRole = "bowler"
	RoleAllRounder   PlayerRole = "all_rounder"
	RoleWicketKeeper PlayerRole = "wicket_keeper"
)

// Player price bounds in credits
var (
	MinPlayerPrice = decimal.NewFromInt(1)
	MaxPlayerPrice = decimal.NewFromInt(15)
)

// Player is a cricketer available for selection in one match
type Player struct {
	ID            string
	MatchID       string
	Name          string
	Role          PlayerRole
	Team          string
	BasePrice     decimal.Decimal // Credits
	CurrentPoints decimal.Decimal // Fed by an external scoring source
	ImageURL      string
}

// NewPlayer validates a player listing for a match
func NewPlayer(id, matchID, name string, role PlayerRole, team string, basePrice decimal.Decimal, imageURL string) (*Player, error) {
	name = strings.TrimSpace(name)
	team = strings.TrimSpace(team)

	switch {
	case matchID == "":
		return nil, fmt.Errorf("%w: match id is required", errs.ErrInvalidRequest)
	case name == "":
		return nil, fmt.Errorf("%w: player name is required", errs.ErrInvalidRequest)
	case team == "":
		return nil, fmt.Errorf("%w: player team is required", errs.ErrInvalidRequest)
	case !IsValidPlayerRole(string(role)):
		return nil, fmt.Errorf("%w: unknown player role %q", errs.ErrInvalidRequest, role)
	case basePrice.LessThan(MinPlayerPrice) || basePrice.GreaterThan(MaxPlayerPrice):
		return nil, fmt.Errorf("%w: base price must be between %s and %s credits",
			errs.ErrInvalidRequest, MinPlayerPrice, MaxPlayerPrice)
	}

	return &Player{
		ID:            id,
		MatchID:       matchID,
		Name:          name,
		Role:          role,
		Team:          team,
		BasePrice:     basePrice,
		CurrentPoints: decimal.Zero,
		ImageURL:      strings.TrimSpace(imageURL),
	}, nil
}

// IsValidPlayerRole checks the role against the supported list
func IsValidPlayerRole(role string) bool {
	switch PlayerRole(role) {
	case RoleBatsman, RoleBowler, RoleAllRounder, RoleWicketKeeper:
		return true
	}
	return false
}
