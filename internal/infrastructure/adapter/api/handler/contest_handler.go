package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/api/middleware"
)

// ContestHandler serves contests, joins and leaderboards
type ContestHandler struct {
	contestUseCase     usecase.ContestUseCase
	leaderboardUseCase usecase.LeaderboardUseCase
	logger             coreport.Logger
}

// NewContestHandler creates a new contest handler instance
func NewContestHandler(
	contestUseCase usecase.ContestUseCase,
	leaderboardUseCase usecase.LeaderboardUseCase,
	logger coreport.Logger,
) *ContestHandler {
	return &ContestHandler{
		contestUseCase:     contestUseCase,
		leaderboardUseCase: leaderboardUseCase,
		logger:             logger,
	}
}

// ListContests handles GET /contests?match_id=&status=
func (h *ContestHandler) ListContests(c *gin.Context) {
	contests, err := h.contestUseCase.ListContests(c.Request.Context(), usecase.ContestListFilter{
		MatchID: c.Query("match_id"),
		Status:  c.Query("status"),
	})
	if err != nil {
		respondError(c, h.logger, "list contests", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewContestListResponse(contests))
}

// GetContest handles GET /contests/:id
func (h *ContestHandler) GetContest(c *gin.Context) {
	contest, err := h.contestUseCase.GetContest(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "get contest", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewContestResponse(contest))
}

// CreateContest handles POST /contests
func (h *ContestHandler) CreateContest(c *gin.Context) {
	var req dto.CreateContestRequest
	if !bindJSON(c, &req) {
		return
	}

	contest, err := h.contestUseCase.CreateContest(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, h.logger, "create contest", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewContestResponse(contest))
}

// CancelContest handles POST /contests/:id/cancel
func (h *ContestHandler) CancelContest(c *gin.Context) {
	refunded, err := h.contestUseCase.CancelContest(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "cancel contest", err)
		return
	}
	c.JSON(http.StatusOK, dto.CancelContestResponse{Success: true, RefundedEntries: refunded})
}

// JoinContest handles POST /contests/:id/join
func (h *ContestHandler) JoinContest(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.JoinContestRequest
	if !bindJSON(c, &req) {
		return
	}

	contestID := c.Param("id")
	if req.ContestID != "" && req.ContestID != contestID {
		middleware.AbortWithError(c, fmt.Errorf("%w: contest_id does not match the path", errs.ErrInvalidRequest))
		return
	}

	entry, err := h.contestUseCase.JoinContest(c.Request.Context(), user.ID, contestID, req.TeamID)
	if err != nil {
		respondError(c, h.logger, "join contest", err)
		return
	}

	c.JSON(http.StatusOK, dto.JoinContestResponse{
		Success: true,
		Message: "Successfully joined contest",
		Entry:   dto.NewContestEntryResponse(entry),
	})
}

// GetLeaderboard handles GET /contests/:id/leaderboard
func (h *ContestHandler) GetLeaderboard(c *gin.Context) {
	board, err := h.leaderboardUseCase.GetLeaderboard(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "get leaderboard", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewLeaderboardResponse(board))
}

// ListMyContests handles GET /my-contests
func (h *ContestHandler) ListMyContests(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	items, err := h.contestUseCase.ListMyContests(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, "list my contests", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMyContestsResponse(items))
}
