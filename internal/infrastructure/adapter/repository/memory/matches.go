package memory

import (
	"context"
	"slices"
	"sort"
	"time"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
)

type matchRepository struct {
	store *Store
}

func (r *matchRepository) Create(ctx context.Context, match *entity.Match) error {
	return r.store.run(ctx, func(st *state) error {
		for _, m := range st.matches {
			if m.ID == match.ID || m.Slug == match.Slug {
				return errs.ErrDuplicateMatch
			}
		}
		st.matches[match.ID] = *match
		return nil
	})
}

func (r *matchRepository) GetByID(ctx context.Context, id string) (*entity.Match, error) {
	var out *entity.Match
	err := r.store.run(ctx, func(st *state) error {
		m, ok := st.matches[id]
		if !ok {
			return errs.ErrMatchNotFound
		}
		out = &m
		return nil
	})
	return out, err
}

func (r *matchRepository) GetBySlug(ctx context.Context, slug string) (*entity.Match, error) {
	var out *entity.Match
	err := r.store.run(ctx, func(st *state) error {
		for _, m := range st.matches {
			if m.Slug == slug {
				out = &m
				return nil
			}
		}
		return errs.ErrMatchNotFound
	})
	return out, err
}

func (r *matchRepository) List(ctx context.Context, status entity.MatchStatus) ([]*entity.Match, error) {
	return r.filter(ctx, func(m entity.Match) bool {
		return status == "" || m.Status == status
	})
}

func (r *matchRepository) ListDueToStart(ctx context.Context, now time.Time) ([]*entity.Match, error) {
	return r.filter(ctx, func(m entity.Match) bool {
		return m.Status == entity.MatchUpcoming && !m.StartTime.After(now)
	})
}

func (r *matchRepository) UpdateStatus(ctx context.Context, id string, to entity.MatchStatus, from ...entity.MatchStatus) (bool, error) {
	var moved bool
	err := r.store.run(ctx, func(st *state) error {
		m, ok := st.matches[id]
		if !ok || (len(from) > 0 && !slices.Contains(from, m.Status)) {
			return nil
		}
		m.Status = to
		st.matches[id] = m
		moved = true
		return nil
	})
	return moved, err
}

func (r *matchRepository) filter(ctx context.Context, keep func(entity.Match) bool) ([]*entity.Match, error) {
	out := []*entity.Match{}
	err := r.store.run(ctx, func(st *state) error {
		for _, m := range st.matches {
			if keep(m) {
				out = append(out, &m)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].StartTime.Before(out[j].StartTime)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

type playerRepository struct {
	store *Store
}

func (r *playerRepository) Create(ctx context.Context, player *entity.Player) error {
	return r.store.run(ctx, func(st *state) error {
		if _, ok := st.matches[player.MatchID]; !ok {
			return errs.ErrMatchNotFound
		}
		st.players[player.ID] = *player
		return nil
	})
}

func (r *playerRepository) GetByID(ctx context.Context, id string) (*entity.Player, error) {
	var out *entity.Player
	err := r.store.run(ctx, func(st *state) error {
		p, ok := st.players[id]
		if !ok {
			return errs.ErrPlayerNotFound
		}
		out = &p
		return nil
	})
	return out, err
}

func (r *playerRepository) ListByMatch(ctx context.Context, matchID string) ([]*entity.Player, error) {
	out := []*entity.Player{}
	err := r.store.run(ctx, func(st *state) error {
		for _, p := range st.players {
			if p.MatchID == matchID {
				out = append(out, &p)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *playerRepository) FindByIDsInMatch(ctx context.Context, matchID string, ids []string) ([]*entity.Player, error) {
	out := []*entity.Player{}
	err := r.store.run(ctx, func(st *state) error {
		seen := make(map[string]bool, len(ids))
		for _, id := range ids {
			if seen[id] {
				continue
			}
			seen[id] = true
			if p, ok := st.players[id]; ok && p.MatchID == matchID {
				out = append(out, &p)
			}
		}
		return nil
	})
	return out, err
}
