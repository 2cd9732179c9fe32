package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/model"
)

// PlayerRepository implements PlayerRepository interface using GORM
type PlayerRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPlayerRepository creates a new PlayerRepository instance
func NewPlayerRepository(db *gorm.DB, logger coreport.Logger) *PlayerRepository {
	return &PlayerRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *PlayerRepository) modelToEntity(m *model.Player) *entity.Player {
	return &entity.Player{
		ID:            m.ID,
		MatchID:       m.MatchID,
		Name:          m.Name,
		Role:          entity.PlayerRole(m.Role),
		Team:          m.Team,
		BasePrice:     m.BasePrice,
		CurrentPoints: m.CurrentPoints,
		ImageURL:      m.ImageURL,
	}
}

func (r *PlayerRepository) toEntities(models []model.Player) []*entity.Player {
	players := make([]*entity.Player, 0, len(models))
	for i := range models {
		players = append(players, r.modelToEntity(&models[i]))
	}
	return players
}

// Create saves a new player
func (r *PlayerRepository) Create(ctx context.Context, player *entity.Player) error {
	m := model.Player{
		ID:            player.ID,
		MatchID:       player.MatchID,
		Name:          player.Name,
		Role:          string(player.Role),
		Team:          player.Team,
		BasePrice:     player.BasePrice,
		CurrentPoints: player.CurrentPoints,
		ImageURL:      player.ImageURL,
	}

	if result := r.db.WithContext(ctx).Omit("Match").Create(&m); result.Error != nil {
		return storageError(r.errorClassifier, r.logger, "creating player", result.Error, nil,
			map[string]any{"player_id": player.ID, "match_id": player.MatchID})
	}
	return nil
}

// GetByID retrieves a player by ID
func (r *PlayerRepository) GetByID(ctx context.Context, id string) (*entity.Player, error) {
	var m model.Player
	if result := r.db.WithContext(ctx).Where("id = ?", id).First(&m); result.Error != nil {
		return nil, storageError(r.errorClassifier, r.logger, "getting player", result.Error, errs.ErrPlayerNotFound,
			map[string]any{"player_id": id})
	}
	return r.modelToEntity(&m), nil
}

// ListByMatch returns the players of a match ordered by name
func (r *PlayerRepository) ListByMatch(ctx context.Context, matchID string) ([]*entity.Player, error) {
	var models []model.Player
	result := r.db.WithContext(ctx).Where("match_id = ?", matchID).Order("name ASC, id ASC").Find(&models)
	if result.Error != nil {
		return nil, storageError(r.errorClassifier, r.logger, "listing players", result.Error, nil,
			map[string]any{"match_id": matchID})
	}
	return r.toEntities(models), nil
}

// FindByIDsInMatch returns the requested players that belong to the match
func (r *PlayerRepository) FindByIDsInMatch(ctx context.Context, matchID string, ids []string) ([]*entity.Player, error) {
	if len(ids) == 0 {
		return []*entity.Player{}, nil
	}

	var models []model.Player
	result := r.db.WithContext(ctx).Where("match_id = ? AND id IN ?", matchID, ids).Find(&models)
	if result.Error != nil {
		return nil, storageError(r.errorClassifier, r.logger, "finding match players", result.Error, nil,
			map[string]any{"match_id": matchID})
	}
	return r.toEntities(models), nil
}
