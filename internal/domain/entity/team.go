package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Team composition rules
const (
	TeamSize          = 11
	MaxTeamNameLength = 100
	MinWicketKeepers  = 1
	MinBatsmen        = 3
	MinBowlers        = 1
	MinAllRounders    = 1
)

// MaxTeamCredits is the total budget for one team
var MaxTeamCredits = decimal.NewFromInt(100)

// PlayerSelection is one requested slot of a team
type PlayerSelection struct {
	PlayerID      string
	IsCaptain     bool
	IsViceCaptain bool
}

// TeamPlayer is a persisted slot of a team
type TeamPlayer struct {
	PlayerID      string
	IsCaptain     bool
	IsViceCaptain bool
}

// Team is a user's 11-player fantasy roster for one match. It never changes after creation.
type Team struct {
	ID          string
	UserID      string
	MatchID     string
	TeamName    string
	Players     []TeamPlayer
	TotalPoints decimal.Decimal // Fed by an external scoring source
	CreatedAt   time.Time
}

// Captain returns the player id of the captain, or "" if none is set
func (t *Team) Captain() string {
	for _, p := range t.Players {
		if p.IsCaptain {
			return p.PlayerID
		}
	}
	return ""
}

// ViceCaptain returns the player id of the vice captain, or "" if none is set
func (t *Team) ViceCaptain() string {
	for _, p := range t.Players {
		if p.IsViceCaptain {
			return p.PlayerID
		}
	}
	return ""
}

// PlayerIDs returns the roster ids in selection order
func (t *Team) PlayerIDs() []string {
	ids := make([]string, 0, len(t.Players))
	for _, p := range t.Players {
		ids = append(ids, p.PlayerID)
	}
	return ids
}

// IsOwnedBy reports whether userID created the team
func (t *Team) IsOwnedBy(userID string) bool {
	return t.UserID == userID
}
