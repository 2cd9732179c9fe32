package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/model"
)

// ContestEntryRepository implements ContestEntryRepository interface using GORM
type ContestEntryRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewContestEntryRepository creates a new ContestEntryRepository instance
func NewContestEntryRepository(db *gorm.DB, logger coreport.Logger) *ContestEntryRepository {
	return &ContestEntryRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *ContestEntryRepository) modelToEntity(m *model.ContestEntry) *entity.ContestEntry {
	return &entity.ContestEntry{
		ID:        m.ID,
		ContestID: m.ContestID,
		UserID:    m.UserID,
		TeamID:    m.TeamID,
		Rank:      m.Rank,
		Winnings:  m.Winnings,
		CreatedAt: m.CreatedAt,
	}
}

func (r *ContestEntryRepository) toEntities(models []model.ContestEntry) []*entity.ContestEntry {
	entries := make([]*entity.ContestEntry, 0, len(models))
	for i := range models {
		entries = append(entries, r.modelToEntity(&models[i]))
	}
	return entries
}

// Create saves an entry; the unique index on (contest_id, user_id) rejects a second one
func (r *ContestEntryRepository) Create(ctx context.Context, entry *entity.ContestEntry) error {
	m := model.ContestEntry{
		ID:        entry.ID,
		ContestID: entry.ContestID,
		UserID:    entry.UserID,
		TeamID:    entry.TeamID,
		Rank:      entry.Rank,
		Winnings:  entry.Winnings,
		CreatedAt: entry.CreatedAt,
	}

	if result := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m); result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return errs.ErrAlreadyJoined
		}
		return storageError(r.errorClassifier, r.logger, "creating contest entry", result.Error, nil,
			map[string]any{"contest_id": entry.ContestID, "user_id": entry.UserID})
	}
	return nil
}

// Exists reports whether the user has an entry in the contest
func (r *ContestEntryRepository) Exists(ctx context.Context, contestID, userID string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.ContestEntry{}).
		Where("contest_id = ? AND user_id = ?", contestID, userID).
		Count(&count)
	if result.Error != nil {
		return false, storageError(r.errorClassifier, r.logger, "checking contest entry", result.Error, nil,
			map[string]any{"contest_id": contestID, "user_id": userID})
	}
	return count > 0, nil
}

// ListByContest returns entries in join order
func (r *ContestEntryRepository) ListByContest(ctx context.Context, contestID string) ([]*entity.ContestEntry, error) {
	var models []model.ContestEntry
	result := r.db.WithContext(ctx).Where("contest_id = ?", contestID).Order("created_at ASC, id ASC").Find(&models)
	if result.Error != nil {
		return nil, storageError(r.errorClassifier, r.logger, "listing contest entries", result.Error, nil,
			map[string]any{"contest_id": contestID})
	}
	return r.toEntities(models), nil
}

// ListByUser returns the entries of a user, newest first
func (r *ContestEntryRepository) ListByUser(ctx context.Context, userID string) ([]*entity.ContestEntry, error) {
	var models []model.ContestEntry
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC, id DESC").Find(&models)
	if result.Error != nil {
		return nil, storageError(r.errorClassifier, r.logger, "listing user entries", result.Error, nil,
			map[string]any{"user_id": userID})
	}
	return r.toEntities(models), nil
}
