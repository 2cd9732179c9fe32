package team

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
)

// rosterOf builds players named p1..pN with the given role counts, all at price
func rosterOf(wk, bat, bowl, ar int, price string) []*entity.Player {
	var players []*entity.Player
	add := func(n int, role entity.PlayerRole) {
		for i := 0; i < n; i++ {
			players = append(players, &entity.Player{
				ID:        fmt.Sprintf("p%d", len(players)+1),
				MatchID:   "m-1",
				Role:      role,
				BasePrice: decimal.RequireFromString(price),
			})
		}
	}
	add(wk, entity.RoleWicketKeeper)
	add(bat, entity.RoleBatsman)
	add(bowl, entity.RoleBowler)
	add(ar, entity.RoleAllRounder)
	return players
}

// selectAll picks every player with p1 as captain and p2 as vice captain
func selectAll(players []*entity.Player) []entity.PlayerSelection {
	selection := make([]entity.PlayerSelection, 0, len(players))
	for i, p := range players {
		selection = append(selection, entity.PlayerSelection{
			PlayerID:      p.ID,
			IsCaptain:     i == 0,
			IsViceCaptain: i == 1,
		})
	}
	return selection
}

func TestValidator_Validate(t *testing.T) {
	v := NewValidator()

	t.Run("should accept a balanced team", func(t *testing.T) {
		players := rosterOf(1, 4, 3, 3, "9")

		roster, err := v.Validate(selectAll(players), players)

		require.NoError(t, err)
		require.Len(t, roster, entity.TeamSize)
		assert.True(t, roster[0].IsCaptain)
		assert.True(t, roster[1].IsViceCaptain)
	})

	t.Run("should accept a total exactly at the budget", func(t *testing.T) {
		players := rosterOf(1, 4, 3, 3, "9")
		players[10].BasePrice = decimal.NewFromInt(10)

		_, err := v.Validate(selectAll(players), players)

		assert.NoError(t, err)
	})

	t.Run("should reject a total one cent above the budget", func(t *testing.T) {
		players := rosterOf(1, 4, 3, 3, "9")
		players[10].BasePrice = decimal.RequireFromString("10.01")

		_, err := v.Validate(selectAll(players), players)

		var budgetErr *errs.BudgetExceededError
		require.ErrorAs(t, err, &budgetErr)
		assert.Equal(t, "100.01", budgetErr.Total)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("should enforce team size", func(t *testing.T) {
		players := rosterOf(1, 4, 3, 2, "9")

		_, err := v.Validate(selectAll(players), players)

		assert.ErrorIs(t, err, errs.ErrTeamSize)
	})

	t.Run("should reject duplicates before anything else", func(t *testing.T) {
		players := rosterOf(1, 4, 3, 3, "9")
		selection := selectAll(players)
		selection[10].PlayerID = selection[9].PlayerID
		selection[0].IsCaptain = false

		_, err := v.Validate(selection, players)

		assert.ErrorIs(t, err, errs.ErrDuplicatePlayer)
	})

	t.Run("should reject players outside the match", func(t *testing.T) {
		players := rosterOf(1, 4, 3, 3, "9")

		_, err := v.Validate(selectAll(players), players[:10])

		assert.ErrorIs(t, err, errs.ErrInvalidPlayers)
	})

	t.Run("should enforce leadership", func(t *testing.T) {
		players := rosterOf(1, 4, 3, 3, "9")

		noCaptain := selectAll(players)
		noCaptain[0].IsCaptain = false

		twoVice := selectAll(players)
		twoVice[2].IsViceCaptain = true

		shared := selectAll(players)
		shared[1].IsViceCaptain = false
		shared[0].IsViceCaptain = true

		_, err := v.Validate(noCaptain, players)
		assert.ErrorIs(t, err, errs.ErrCaptainCount)

		_, err = v.Validate(twoVice, players)
		assert.ErrorIs(t, err, errs.ErrViceCaptainCount)

		_, err = v.Validate(shared, players)
		assert.ErrorIs(t, err, errs.ErrCaptainIsViceCaptain)
	})

	t.Run("should enforce role minimums", func(t *testing.T) {
		testCases := []struct {
			name              string
			wk, bat, bowl, ar int
			want              error
		}{
			{"No wicket keeper", 0, 4, 4, 3, errs.ErrMissingWicketKeeper},
			{"Two batsmen", 1, 2, 5, 3, errs.ErrNotEnoughBatsmen},
			{"No bowler", 1, 5, 0, 5, errs.ErrMissingBowler},
			{"No all rounder", 1, 5, 5, 0, errs.ErrMissingAllRounder},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				players := rosterOf(tc.wk, tc.bat, tc.bowl, tc.ar, "9")

				_, err := v.Validate(selectAll(players), players)

				assert.ErrorIs(t, err, tc.want)
			})
		}
	})

	t.Run("should check the budget before roles", func(t *testing.T) {
		players := rosterOf(0, 4, 4, 3, "10")

		_, err := v.Validate(selectAll(players), players)

		assert.ErrorIs(t, err, errs.ErrBudgetExceeded)
	})
}
