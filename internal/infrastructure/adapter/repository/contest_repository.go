package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/model"
)

// ContestRepository implements ContestRepository interface using GORM
type ContestRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewContestRepository creates a new ContestRepository instance
func NewContestRepository(db *gorm.DB, logger coreport.Logger) *ContestRepository {
	return &ContestRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *ContestRepository) entityToModel(c *entity.Contest) model.Contest {
	payouts := make([]model.Payout, 0, len(c.PrizeDistribution))
	for _, p := range c.PrizeDistribution {
		payouts = append(payouts, model.Payout{
			Type:     string(p.Kind),
			FromRank: p.FromRank,
			ToRank:   p.ToRank,
			Amount:   p.Amount,
		})
	}
	return model.Contest{
		ID:                c.ID,
		MatchID:           c.MatchID,
		Name:              c.Name,
		EntryFee:          c.EntryFee,
		PrizePool:         c.PrizePool,
		MaxUsers:          c.MaxUsers,
		JoinedUsers:       c.JoinedUsers,
		Status:            string(c.Status),
		PrizeDistribution: payouts,
		CreatedAt:         c.CreatedAt,
	}
}

func (r *ContestRepository) modelToEntity(m *model.Contest) *entity.Contest {
	dist := make(entity.PrizeDistribution, 0, len(m.PrizeDistribution))
	for _, p := range m.PrizeDistribution {
		dist = append(dist, entity.Payout{
			Kind:     entity.PayoutKind(p.Type),
			FromRank: p.FromRank,
			ToRank:   p.ToRank,
			Amount:   p.Amount,
		})
	}
	return &entity.Contest{
		ID:                m.ID,
		MatchID:           m.MatchID,
		Name:              m.Name,
		EntryFee:          m.EntryFee,
		PrizePool:         m.PrizePool,
		MaxUsers:          m.MaxUsers,
		JoinedUsers:       m.JoinedUsers,
		Status:            entity.ContestStatus(m.Status),
		PrizeDistribution: dist,
		CreatedAt:         m.CreatedAt,
	}
}

func (r *ContestRepository) toEntities(models []model.Contest) []*entity.Contest {
	contests := make([]*entity.Contest, 0, len(models))
	for i := range models {
		contests = append(contests, r.modelToEntity(&models[i]))
	}
	return contests
}

func (r *ContestRepository) fail(operation string, err error, contestID string) error {
	return storageError(r.errorClassifier, r.logger, operation, err, errs.ErrContestNotFound,
		map[string]any{"contest_id": contestID})
}

// Create saves a new contest
func (r *ContestRepository) Create(ctx context.Context, contest *entity.Contest) error {
	m := r.entityToModel(contest)
	if result := r.db.WithContext(ctx).Omit("Match").Create(&m); result.Error != nil {
		return r.fail("creating contest", result.Error, contest.ID)
	}
	return nil
}

// GetByID retrieves a contest by ID
func (r *ContestRepository) GetByID(ctx context.Context, id string) (*entity.Contest, error) {
	var m model.Contest
	if result := r.db.WithContext(ctx).Where("id = ?", id).First(&m); result.Error != nil {
		return nil, r.fail("getting contest", result.Error, id)
	}
	return r.modelToEntity(&m), nil
}

// List returns contests matching the filter, newest first
func (r *ContestRepository) List(ctx context.Context, filter persistence.ContestFilter) ([]*entity.Contest, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if filter.MatchID != "" {
		query = query.Where("match_id = ?", filter.MatchID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var models []model.Contest
	if result := query.Find(&models); result.Error != nil {
		return nil, r.fail("listing contests", result.Error, "")
	}
	return r.toEntities(models), nil
}

// ListByMatch returns the contests of a match in one of statuses
func (r *ContestRepository) ListByMatch(ctx context.Context, matchID string, statuses ...entity.ContestStatus) ([]*entity.Contest, error) {
	query := r.db.WithContext(ctx).Where("match_id = ?", matchID).Order("created_at ASC, id ASC")
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statusStrings(statuses))
	}

	var models []model.Contest
	if result := query.Find(&models); result.Error != nil {
		return nil, r.fail("listing match contests", result.Error, "")
	}
	return r.toEntities(models), nil
}

// IncrementJoined takes a seat with one conditional UPDATE and flips the contest to full
// on the last seat. When no row qualifies, the current row tells why.
func (r *ContestRepository) IncrementJoined(ctx context.Context, id string) (*entity.Contest, error) {
	result := r.db.WithContext(ctx).Exec(
		`UPDATE contests
		 SET joined_users = joined_users + 1,
		     status = CASE WHEN joined_users + 1 >= max_users THEN ? ELSE status END
		 WHERE id = ? AND status = ? AND joined_users < max_users`,
		string(entity.ContestFull), id, string(entity.ContestOpen),
	)
	if result.Error != nil {
		return nil, r.fail("taking contest seat", result.Error, id)
	}

	contest, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected == 0 {
		if err := contest.CheckJoinable(); err != nil {
			return nil, err
		}
		return nil, errs.ErrConcurrentUpdate
	}
	return contest, nil
}

// UpdateStatus is a compare-and-set on the status column
func (r *ContestRepository) UpdateStatus(ctx context.Context, id string, to entity.ContestStatus, from ...entity.ContestStatus) (bool, error) {
	query := r.db.WithContext(ctx).Model(&model.Contest{}).Where("id = ?", id)
	if len(from) > 0 {
		query = query.Where("status IN ?", statusStrings(from))
	}

	result := query.Update("status", string(to))
	if result.Error != nil {
		return false, r.fail("updating contest status", result.Error, id)
	}
	return result.RowsAffected == 1, nil
}

func statusStrings[S ~string](statuses []S) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}
