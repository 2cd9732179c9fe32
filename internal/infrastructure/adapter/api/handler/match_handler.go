package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/api/dto"
)

// MatchHandler serves fixtures and their player lists
type MatchHandler struct {
	matchUseCase usecase.MatchUseCase
	logger       coreport.Logger
}

// NewMatchHandler creates a new match handler instance
func NewMatchHandler(matchUseCase usecase.MatchUseCase, logger coreport.Logger) *MatchHandler {
	return &MatchHandler{
		matchUseCase: matchUseCase,
		logger:       logger,
	}
}

// ListMatches handles GET /matches?status=
func (h *MatchHandler) ListMatches(c *gin.Context) {
	matches, err := h.matchUseCase.ListMatches(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, h.logger, "list matches", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMatchListResponse(matches))
}

// GetMatch handles GET /matches/:id
func (h *MatchHandler) GetMatch(c *gin.Context) {
	match, err := h.matchUseCase.GetMatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "get match", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMatchResponse(match))
}

// GetMatchBySlug handles GET /matches/slug/:slug
func (h *MatchHandler) GetMatchBySlug(c *gin.Context) {
	match, err := h.matchUseCase.GetMatchBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.logger, "get match by slug", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMatchResponse(match))
}

// CreateMatch handles POST /matches
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req dto.CreateMatchRequest
	if !bindJSON(c, &req) {
		return
	}

	match, err := h.matchUseCase.CreateMatch(c.Request.Context(), usecase.CreateMatchInput{
		Title:     req.Title,
		Team1:     req.Team1,
		Team2:     req.Team2,
		StartTime: req.StartTime,
		Venue:     req.Venue,
		MatchType: req.MatchType,
	})
	if err != nil {
		respondError(c, h.logger, "create match", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMatchResponse(match))
}

// UpdateMatchStatus handles PUT /matches/:id/status
func (h *MatchHandler) UpdateMatchStatus(c *gin.Context) {
	var req dto.UpdateMatchStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	match, err := h.matchUseCase.UpdateMatchStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, h.logger, "update match status", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMatchResponse(match))
}

// ListPlayers handles GET /players/:match_id
func (h *MatchHandler) ListPlayers(c *gin.Context) {
	players, err := h.matchUseCase.ListPlayers(c.Request.Context(), c.Param("match_id"))
	if err != nil {
		respondError(c, h.logger, "list players", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPlayerListResponse(players))
}

// CreatePlayer handles POST /players
func (h *MatchHandler) CreatePlayer(c *gin.Context) {
	var req dto.CreatePlayerRequest
	if !bindJSON(c, &req) {
		return
	}

	player, err := h.matchUseCase.CreatePlayer(c.Request.Context(), usecase.CreatePlayerInput{
		MatchID:   req.MatchID,
		Name:      req.Name,
		Role:      req.Role,
		Team:      req.Team,
		BasePrice: req.BasePrice.String(),
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		respondError(c, h.logger, "create player", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPlayerResponse(player))
}
