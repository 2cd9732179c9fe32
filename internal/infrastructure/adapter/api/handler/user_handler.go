package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/api/dto"
)

// UserHandler handles registration, login and the profile of the signed-in user
type UserHandler struct {
	authUseCase usecase.AuthUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(authUseCase usecase.AuthUseCase, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// Register handles POST /auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authUseCase.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, "register", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTokenResponse(result))
}

// Login handles POST /auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, h.logger, "login", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTokenResponse(result))
}

// Profile handles GET /auth/profile
func (h *UserHandler) Profile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	// Reload so the balance is current even if the token was resolved earlier in the chain
	fresh, err := h.authUseCase.Profile(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, "profile", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(fresh))
}
