package entity

import (
	"fmt"
	"sort"

	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
)

// PayoutKind tells a single-rank payout apart from a rank range
type PayoutKind string

// Payout kinds
const (
	PayoutSingle PayoutKind = "single"
	PayoutRange  PayoutKind = "range"
)

// Payout pays Amount cents to every rank in [FromRank, ToRank].
// A single payout has FromRank == ToRank.
type Payout struct {
	Kind     PayoutKind
	FromRank int
	ToRank   int
	Amount   int64
}

// NewSinglePayout pays amount to exactly one rank
func NewSinglePayout(rank int, amount int64) Payout {
	return Payout{Kind: PayoutSingle, FromRank: rank, ToRank: rank, Amount: amount}
}

// NewRangePayout pays amount to each rank from..to inclusive
func NewRangePayout(from, to int, amount int64) Payout {
	return Payout{Kind: PayoutRange, FromRank: from, ToRank: to, Amount: amount}
}

// Covers reports whether rank falls in this payout
func (p Payout) Covers(rank int) bool {
	return rank >= p.FromRank && rank <= p.ToRank
}

// Total returns the amount paid across all ranks of the payout
func (p Payout) Total() (int64, bool) {
	return MultiplyAmount(p.Amount, p.ToRank-p.FromRank+1)
}

// PrizeDistribution is the ordered list of payouts of a contest
type PrizeDistribution []Payout

// Validate checks ranks, overlaps and the total against the contest size and pool
func (d PrizeDistribution) Validate(maxUsers int, prizePool int64) error {
	sorted := make([]Payout, len(d))
	copy(sorted, d)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].FromRank < sorted[j].FromRank })

	var sum int64
	for i, p := range sorted {
		if p.Kind != PayoutSingle && p.Kind != PayoutRange {
			return fmt.Errorf("%w: unknown payout type %q", errs.ErrInvalidPrizeDistribution, p.Kind)
		}
		if p.Kind == PayoutSingle && p.FromRank != p.ToRank {
			return fmt.Errorf("%w: single payout must cover one rank", errs.ErrInvalidPrizeDistribution)
		}
		if p.FromRank < 1 {
			return fmt.Errorf("%w: ranks start at 1", errs.ErrInvalidPrizeDistribution)
		}
		if p.FromRank > p.ToRank {
			return fmt.Errorf("%w: range %d-%d is reversed", errs.ErrInvalidPrizeDistribution, p.FromRank, p.ToRank)
		}
		if p.ToRank > maxUsers {
			return fmt.Errorf("%w: rank %d exceeds max users %d", errs.ErrInvalidPrizeDistribution, p.ToRank, maxUsers)
		}
		if p.Amount < 0 {
			return fmt.Errorf("%w: payout amount cannot be negative", errs.ErrInvalidPrizeDistribution)
		}
		if i > 0 && p.FromRank <= sorted[i-1].ToRank {
			return fmt.Errorf("%w: rank %d is paid more than once", errs.ErrInvalidPrizeDistribution, p.FromRank)
		}

		total, ok := p.Total()
		if !ok || sum+total < sum {
			return fmt.Errorf("%w: payout total overflows", errs.ErrInvalidPrizeDistribution)
		}
		sum += total
	}

	if sum > prizePool {
		return fmt.Errorf("%w: payouts total %s exceed prize pool %s",
			errs.ErrInvalidPrizeDistribution, FormatAmount(sum), FormatAmount(prizePool))
	}
	return nil
}

// PayoutForRank returns the winnings for rank, zero when the rank is not paid
func (d PrizeDistribution) PayoutForRank(rank int) int64 {
	for _, p := range d {
		if p.Covers(rank) {
			return p.Amount
		}
	}
	return 0
}
