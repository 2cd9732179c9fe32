package team

import (
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
)

// Validator checks a team selection against the composition rules.
// Checks run in a fixed order and the first failing rule is reported.
type Validator struct{}

// NewValidator creates a new Validator
func NewValidator() *Validator {
	return &Validator{}
}

// Validate approves selection given the players that resolved for the target match.
// matchPlayers only needs to contain the selected players; anything missing from it
// is treated as not belonging to the match.
func (v *Validator) Validate(selection []entity.PlayerSelection, matchPlayers []*entity.Player) ([]entity.TeamPlayer, error) {
	if len(selection) != entity.TeamSize {
		return nil, errs.ErrTeamSize
	}

	seen := make(map[string]struct{}, len(selection))
	for _, s := range selection {
		if _, dup := seen[s.PlayerID]; dup {
			return nil, errs.ErrDuplicatePlayer
		}
		seen[s.PlayerID] = struct{}{}
	}

	byID := make(map[string]*entity.Player, len(matchPlayers))
	for _, p := range matchPlayers {
		byID[p.ID] = p
	}
	roster := make([]*entity.Player, 0, len(selection))
	for _, s := range selection {
		p, ok := byID[s.PlayerID]
		if !ok {
			return nil, errs.ErrInvalidPlayers
		}
		roster = append(roster, p)
	}

	if err := v.validateLeadership(selection); err != nil {
		return nil, err
	}

	if err := v.validateBudget(roster); err != nil {
		return nil, err
	}

	if err := v.validateRoles(roster); err != nil {
		return nil, err
	}

	players := make([]entity.TeamPlayer, 0, len(selection))
	for _, s := range selection {
		players = append(players, entity.TeamPlayer{
			PlayerID:      s.PlayerID,
			IsCaptain:     s.IsCaptain,
			IsViceCaptain: s.IsViceCaptain,
		})
	}
	return players, nil
}

func (v *Validator) validateLeadership(selection []entity.PlayerSelection) error {
	captains, viceCaptains := 0, 0
	sharedArmband := false
	for _, s := range selection {
		if s.IsCaptain {
			captains++
		}
		if s.IsViceCaptain {
			viceCaptains++
		}
		if s.IsCaptain && s.IsViceCaptain {
			sharedArmband = true
		}
	}

	switch {
	case captains != 1:
		return errs.ErrCaptainCount
	case viceCaptains != 1:
		return errs.ErrViceCaptainCount
	case sharedArmband:
		return errs.ErrCaptainIsViceCaptain
	}
	return nil
}

// validateBudget allows a total exactly equal to the cap
func (v *Validator) validateBudget(roster []*entity.Player) error {
	total := decimal.Zero
	for _, p := range roster {
		total = total.Add(p.BasePrice)
	}

	if total.GreaterThan(entity.MaxTeamCredits) {
		return errs.NewBudgetExceededError(total.String(), entity.MaxTeamCredits.String())
	}
	return nil
}

func (v *Validator) validateRoles(roster []*entity.Player) error {
	counts := make(map[entity.PlayerRole]int, 4)
	for _, p := range roster {
		counts[p.Role]++
	}

	switch {
	case counts[entity.RoleWicketKeeper] < entity.MinWicketKeepers:
		return errs.ErrMissingWicketKeeper
	case counts[entity.RoleBatsman] < entity.MinBatsmen:
		return errs.ErrNotEnoughBatsmen
	case counts[entity.RoleBowler] < entity.MinBowlers:
		return errs.ErrMissingBowler
	case counts[entity.RoleAllRounder] < entity.MinAllRounders:
		return errs.ErrMissingAllRounder
	}
	return nil
}
