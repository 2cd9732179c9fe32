package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/api/dto"
)

// TeamHandler serves fantasy teams
type TeamHandler struct {
	teamUseCase usecase.TeamUseCase
	logger      coreport.Logger
}

// NewTeamHandler creates a new team handler instance
func NewTeamHandler(teamUseCase usecase.TeamUseCase, logger coreport.Logger) *TeamHandler {
	return &TeamHandler{
		teamUseCase: teamUseCase,
		logger:      logger,
	}
}

// CreateTeam handles POST /teams
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateTeamRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.teamUseCase.CreateTeam(c.Request.Context(), user.ID, req.ToInput())
	if err != nil {
		respondError(c, h.logger, "create team", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTeamResponse(team))
}

// GetTeam handles GET /teams/:id
func (h *TeamHandler) GetTeam(c *gin.Context) {
	team, err := h.teamUseCase.GetTeam(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "get team", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTeamResponse(team))
}

// ListUserTeams handles GET /teams/user/:user_id
func (h *TeamHandler) ListUserTeams(c *gin.Context) {
	h.listTeams(c, c.Param("user_id"))
}

// ListMyTeams handles GET /my-teams
func (h *TeamHandler) ListMyTeams(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	h.listTeams(c, user.ID)
}

func (h *TeamHandler) listTeams(c *gin.Context, userID string) {
	teams, err := h.teamUseCase.ListTeamsByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "list teams", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTeamListResponse(teams))
}
