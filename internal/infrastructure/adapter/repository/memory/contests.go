package memory

import (
	"context"
	"slices"
	"sort"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/persistence"
)

type teamRepository struct {
	store *Store
}

func (r *teamRepository) Create(ctx context.Context, team *entity.Team) error {
	return r.store.run(ctx, func(st *state) error {
		if _, ok := st.matches[team.MatchID]; !ok {
			return errs.ErrMatchNotFound
		}
		st.teams[team.ID] = copyTeam(*team)
		return nil
	})
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (*entity.Team, error) {
	var out *entity.Team
	err := r.store.run(ctx, func(st *state) error {
		t, ok := st.teams[id]
		if !ok {
			return errs.ErrTeamNotFound
		}
		t = copyTeam(t)
		out = &t
		return nil
	})
	return out, err
}

func (r *teamRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Team, error) {
	out := []*entity.Team{}
	err := r.store.run(ctx, func(st *state) error {
		for _, t := range st.teams {
			if t.UserID == userID {
				t = copyTeam(t)
				out = append(out, &t)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

type contestRepository struct {
	store *Store
}

func (r *contestRepository) Create(ctx context.Context, contest *entity.Contest) error {
	return r.store.run(ctx, func(st *state) error {
		if _, ok := st.matches[contest.MatchID]; !ok {
			return errs.ErrMatchNotFound
		}
		st.contests[contest.ID] = copyContest(*contest)
		return nil
	})
}

func (r *contestRepository) GetByID(ctx context.Context, id string) (*entity.Contest, error) {
	var out *entity.Contest
	err := r.store.run(ctx, func(st *state) error {
		c, ok := st.contests[id]
		if !ok {
			return errs.ErrContestNotFound
		}
		c = copyContest(c)
		out = &c
		return nil
	})
	return out, err
}

func (r *contestRepository) List(ctx context.Context, filter persistence.ContestFilter) ([]*entity.Contest, error) {
	out, err := r.filter(ctx, func(c entity.Contest) bool {
		return (filter.MatchID == "" || c.MatchID == filter.MatchID) &&
			(filter.Status == "" || c.Status == filter.Status)
	})
	if err != nil {
		return nil, err
	}
	slices.Reverse(out)
	return out, nil
}

func (r *contestRepository) ListByMatch(ctx context.Context, matchID string, statuses ...entity.ContestStatus) ([]*entity.Contest, error) {
	return r.filter(ctx, func(c entity.Contest) bool {
		return c.MatchID == matchID && (len(statuses) == 0 || slices.Contains(statuses, c.Status))
	})
}

// IncrementJoined checks the seat and takes it under the store lock
func (r *contestRepository) IncrementJoined(ctx context.Context, id string) (*entity.Contest, error) {
	var out *entity.Contest
	err := r.store.run(ctx, func(st *state) error {
		c, ok := st.contests[id]
		if !ok {
			return errs.ErrContestNotFound
		}
		if err := c.CheckJoinable(); err != nil {
			return err
		}

		c.JoinedUsers++
		if c.JoinedUsers >= c.MaxUsers {
			c.Status = entity.ContestFull
		}
		st.contests[id] = c

		c = copyContest(c)
		out = &c
		return nil
	})
	return out, err
}

func (r *contestRepository) UpdateStatus(ctx context.Context, id string, to entity.ContestStatus, from ...entity.ContestStatus) (bool, error) {
	var moved bool
	err := r.store.run(ctx, func(st *state) error {
		c, ok := st.contests[id]
		if !ok || (len(from) > 0 && !slices.Contains(from, c.Status)) {
			return nil
		}
		c.Status = to
		st.contests[id] = c
		moved = true
		return nil
	})
	return moved, err
}

// filter returns matching contests oldest first
func (r *contestRepository) filter(ctx context.Context, keep func(entity.Contest) bool) ([]*entity.Contest, error) {
	out := []*entity.Contest{}
	err := r.store.run(ctx, func(st *state) error {
		for _, c := range st.contests {
			if keep(c) {
				c = copyContest(c)
				out = append(out, &c)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

type contestEntryRepository struct {
	store *Store
}

func (r *contestEntryRepository) Create(ctx context.Context, entry *entity.ContestEntry) error {
	return r.store.run(ctx, func(st *state) error {
		if _, ok := st.contests[entry.ContestID]; !ok {
			return errs.ErrContestNotFound
		}
		for _, e := range st.entries {
			if e.ContestID == entry.ContestID && e.UserID == entry.UserID {
				return errs.ErrAlreadyJoined
			}
		}
		st.entries[entry.ID] = copyEntry(*entry)
		return nil
	})
}

func (r *contestEntryRepository) Exists(ctx context.Context, contestID, userID string) (bool, error) {
	var exists bool
	err := r.store.run(ctx, func(st *state) error {
		for _, e := range st.entries {
			if e.ContestID == contestID && e.UserID == userID {
				exists = true
				break
			}
		}
		return nil
	})
	return exists, err
}

func (r *contestEntryRepository) ListByContest(ctx context.Context, contestID string) ([]*entity.ContestEntry, error) {
	return r.filter(ctx, func(e entity.ContestEntry) bool { return e.ContestID == contestID })
}

func (r *contestEntryRepository) ListByUser(ctx context.Context, userID string) ([]*entity.ContestEntry, error) {
	out, err := r.filter(ctx, func(e entity.ContestEntry) bool { return e.UserID == userID })
	if err != nil {
		return nil, err
	}
	slices.Reverse(out)
	return out, nil
}

// filter returns matching entries by creation time, then id
func (r *contestEntryRepository) filter(ctx context.Context, keep func(entity.ContestEntry) bool) ([]*entity.ContestEntry, error) {
	out := []*entity.ContestEntry{}
	err := r.store.run(ctx, func(st *state) error {
		for _, e := range st.entries {
			if keep(e) {
				e = copyEntry(e)
				out = append(out, &e)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
