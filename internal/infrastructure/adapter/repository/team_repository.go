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

// TeamRepository implements TeamRepository interface using GORM
type TeamRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTeamRepository creates a new TeamRepository instance
func NewTeamRepository(db *gorm.DB, logger coreport.Logger) *TeamRepository {
	return &TeamRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *TeamRepository) modelToEntity(m *model.Team) *entity.Team {
	team := &entity.Team{
		ID:          m.ID,
		UserID:      m.UserID,
		MatchID:     m.MatchID,
		TeamName:    m.TeamName,
		TotalPoints: m.TotalPoints,
		CreatedAt:   m.CreatedAt,
		Players:     make([]entity.TeamPlayer, 0, len(m.Players)),
	}
	for _, p := range m.Players {
		team.Players = append(team.Players, entity.TeamPlayer{
			PlayerID:      p.PlayerID,
			IsCaptain:     p.IsCaptain,
			IsViceCaptain: p.IsViceCaptain,
		})
	}
	return team
}

// withRoster preloads the roster in selection order
func (r *TeamRepository) withRoster(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Players", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}

// Create saves the team row and its roster
func (r *TeamRepository) Create(ctx context.Context, team *entity.Team) error {
	m := model.Team{
		ID:          team.ID,
		UserID:      team.UserID,
		MatchID:     team.MatchID,
		TeamName:    team.TeamName,
		TotalPoints: team.TotalPoints,
		CreatedAt:   team.CreatedAt,
	}
	roster := make([]model.TeamPlayer, 0, len(team.Players))
	for i, p := range team.Players {
		roster = append(roster, model.TeamPlayer{
			TeamID:        team.ID,
			PlayerID:      p.PlayerID,
			Position:      i,
			IsCaptain:     p.IsCaptain,
			IsViceCaptain: p.IsViceCaptain,
		})
	}

	db := r.db.WithContext(ctx)
	if result := db.Omit(clause.Associations).Create(&m); result.Error != nil {
		return storageError(r.errorClassifier, r.logger, "creating team", result.Error, nil,
			map[string]any{"team_id": team.ID, "user_id": team.UserID})
	}
	if len(roster) > 0 {
		if result := db.Omit(clause.Associations).Create(&roster); result.Error != nil {
			return storageError(r.errorClassifier, r.logger, "creating team roster", result.Error, nil,
				map[string]any{"team_id": team.ID})
		}
	}

	r.logger.Debug("Team created successfully", map[string]any{
		"team_id":  team.ID,
		"user_id":  team.UserID,
		"match_id": team.MatchID,
	})
	return nil
}

// GetByID retrieves a team with its roster
func (r *TeamRepository) GetByID(ctx context.Context, id string) (*entity.Team, error) {
	var m model.Team
	if result := r.withRoster(ctx).Where("id = ?", id).First(&m); result.Error != nil {
		return nil, storageError(r.errorClassifier, r.logger, "getting team", result.Error, errs.ErrTeamNotFound,
			map[string]any{"team_id": id})
	}
	return r.modelToEntity(&m), nil
}

// ListByUser returns the teams of a user, newest first
func (r *TeamRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Team, error) {
	var models []model.Team
	result := r.withRoster(ctx).Where("user_id = ?", userID).Order("created_at DESC, id DESC").Find(&models)
	if result.Error != nil {
		return nil, storageError(r.errorClassifier, r.logger, "listing teams", result.Error, nil,
			map[string]any{"user_id": userID})
	}

	teams := make([]*entity.Team, 0, len(models))
	for i := range models {
		teams = append(teams, r.modelToEntity(&models[i]))
	}
	return teams, nil
}
