package contest

import (
	"fmt"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/usecase"
)

// parsePrizeDistribution converts request payouts into the typed distribution.
// Rank and amount checks against the contest happen in PrizeDistribution.Validate.
func parsePrizeDistribution(inputs []usecase.PayoutInput) (entity.PrizeDistribution, error) {
	dist := make(entity.PrizeDistribution, 0, len(inputs))
	for i, in := range inputs {
		amount, err := entity.ParseAmount(in.Amount)
		if err != nil {
			return nil, fmt.Errorf("%w: payout %d: %s", errs.ErrInvalidPrizeDistribution, i+1, errs.PublicMessage(err))
		}

		switch entity.PayoutKind(in.Type) {
		case entity.PayoutSingle:
			dist = append(dist, entity.NewSinglePayout(in.Rank, amount))
		case entity.PayoutRange:
			dist = append(dist, entity.NewRangePayout(in.FromRank, in.ToRank, amount))
		default:
			return nil, fmt.Errorf("%w: payout %d: type must be %q or %q",
				errs.ErrInvalidPrizeDistribution, i+1, entity.PayoutSingle, entity.PayoutRange)
		}
	}
	return dist, nil
}
