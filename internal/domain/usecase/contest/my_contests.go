package contest

import (
	"context"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
)

// ListMyContests returns every contest the user joined along with its match, entry and team.
// Entries whose contest no longer resolves are skipped.
func (r *Registry) ListMyContests(ctx context.Context, userID string) ([]*entity.MyContest, error) {
	entries, err := r.uow.GetContestEntryRepository(ctx).ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	contests := r.uow.GetContestRepository(ctx)
	matches := r.uow.GetMatchRepository(ctx)
	teams := r.uow.GetTeamRepository(ctx)

	matchCache := make(map[string]*entity.Match)
	result := make([]*entity.MyContest, 0, len(entries))
	for _, e := range entries {
		contest, err := contests.GetByID(ctx, e.ContestID)
		if err != nil {
			if errs.IsNotFoundError(err) {
				continue
			}
			return nil, err
		}

		match, ok := matchCache[contest.MatchID]
		if !ok {
			match, err = matches.GetByID(ctx, contest.MatchID)
			if err != nil && !errs.IsNotFoundError(err) {
				return nil, err
			}
			matchCache[contest.MatchID] = match
		}

		team, err := teams.GetByID(ctx, e.TeamID)
		if err != nil && !errs.IsNotFoundError(err) {
			return nil, err
		}

		result = append(result, &entity.MyContest{
			Contest: contest,
			Match:   match,
			Entry:   e,
			Team:    team,
		})
	}
	return result, nil
}
