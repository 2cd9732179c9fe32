package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/model"
)

// MatchRepository implements MatchRepository interface using GORM
type MatchRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewMatchRepository creates a new MatchRepository instance
func NewMatchRepository(db *gorm.DB, logger coreport.Logger) *MatchRepository {
	return &MatchRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *MatchRepository) modelToEntity(m *model.Match) *entity.Match {
	return &entity.Match{
		ID:        m.ID,
		Title:     m.Title,
		Slug:      m.Slug,
		Team1:     m.Team1,
		Team2:     m.Team2,
		StartTime: m.StartTime,
		Venue:     m.Venue,
		MatchType: m.MatchType,
		Status:    entity.MatchStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

func (r *MatchRepository) toEntities(models []model.Match) []*entity.Match {
	matches := make([]*entity.Match, 0, len(models))
	for i := range models {
		matches = append(matches, r.modelToEntity(&models[i]))
	}
	return matches
}

func (r *MatchRepository) fail(operation string, err error, matchID string) error {
	return storageError(r.errorClassifier, r.logger, operation, err, errs.ErrMatchNotFound,
		map[string]any{"match_id": matchID})
}

// Create saves a new match
func (r *MatchRepository) Create(ctx context.Context, match *entity.Match) error {
	m := model.Match{
		ID:        match.ID,
		Title:     match.Title,
		Slug:      match.Slug,
		Team1:     match.Team1,
		Team2:     match.Team2,
		StartTime: match.StartTime,
		Venue:     match.Venue,
		MatchType: match.MatchType,
		Status:    string(match.Status),
		CreatedAt: match.CreatedAt,
	}

	if result := r.db.WithContext(ctx).Create(&m); result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return errs.ErrDuplicateMatch
		}
		return r.fail("creating match", result.Error, match.ID)
	}
	return nil
}

// GetByID retrieves a match by ID
func (r *MatchRepository) GetByID(ctx context.Context, id string) (*entity.Match, error) {
	var m model.Match
	if result := r.db.WithContext(ctx).Where("id = ?", id).First(&m); result.Error != nil {
		return nil, r.fail("getting match", result.Error, id)
	}
	return r.modelToEntity(&m), nil
}

// GetBySlug retrieves a match by slug
func (r *MatchRepository) GetBySlug(ctx context.Context, slug string) (*entity.Match, error) {
	var m model.Match
	if result := r.db.WithContext(ctx).Where("slug = ?", slug).First(&m); result.Error != nil {
		return nil, r.fail("getting match by slug", result.Error, slug)
	}
	return r.modelToEntity(&m), nil
}

// List returns matches ordered by start time
func (r *MatchRepository) List(ctx context.Context, status entity.MatchStatus) ([]*entity.Match, error) {
	query := r.db.WithContext(ctx).Order("start_time ASC, id ASC")
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var models []model.Match
	if result := query.Find(&models); result.Error != nil {
		return nil, r.fail("listing matches", result.Error, "")
	}
	return r.toEntities(models), nil
}

// ListDueToStart returns upcoming matches whose start time has passed
func (r *MatchRepository) ListDueToStart(ctx context.Context, now time.Time) ([]*entity.Match, error) {
	var models []model.Match
	result := r.db.WithContext(ctx).
		Where("status = ? AND start_time <= ?", string(entity.MatchUpcoming), now).
		Order("start_time ASC").
		Find(&models)
	if result.Error != nil {
		return nil, r.fail("listing due matches", result.Error, "")
	}
	return r.toEntities(models), nil
}

// UpdateStatus is a compare-and-set on the status column
func (r *MatchRepository) UpdateStatus(ctx context.Context, id string, to entity.MatchStatus, from ...entity.MatchStatus) (bool, error) {
	query := r.db.WithContext(ctx).Model(&model.Match{}).Where("id = ?", id)
	if len(from) > 0 {
		query = query.Where("status IN ?", statusStrings(from))
	}

	result := query.Update("status", string(to))
	if result.Error != nil {
		return false, r.fail("updating match status", result.Error, id)
	}
	return result.RowsAffected == 1, nil
}
