package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups every HTTP handler the router mounts
type Handlers struct {
	User        *handler.UserHandler
	Transaction *handler.TransactionHandler
	Match       *handler.MatchHandler
	Team        *handler.TeamHandler
	Contest     *handler.ContestHandler
	Health      *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, authenticator usecase.Authenticator) {
	requireAuth := middleware.Authenticate(authenticator)
	requireAdmin := middleware.RequireRole(entity.RoleAdmin)

	api := router.Group("/api")
	api.GET("/health", h.Health.Health)

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", h.User.Register)
		authRoutes.POST("/login", h.User.Login)
		authRoutes.GET("/profile", requireAuth, h.User.Profile)
	}

	// Public reads
	api.GET("/matches", h.Match.ListMatches)
	api.GET("/matches/:id", h.Match.GetMatch)
	api.GET("/matches/slug/:slug", h.Match.GetMatchBySlug)
	api.GET("/players/:match_id", h.Match.ListPlayers)
	api.GET("/contests", h.Contest.ListContests)
	api.GET("/contests/:id", h.Contest.GetContest)
	api.GET("/contests/:id/leaderboard", h.Contest.GetLeaderboard)
	api.GET("/teams/:id", h.Team.GetTeam)
	api.GET("/teams/user/:user_id", h.Team.ListUserTeams)

	// Signed-in users
	userRoutes := api.Group("", requireAuth)
	{
		userRoutes.POST("/teams", h.Team.CreateTeam)
		userRoutes.GET("/my-teams", h.Team.ListMyTeams)
		userRoutes.POST("/contests/:id/join", h.Contest.JoinContest)
		userRoutes.GET("/my-contests", h.Contest.ListMyContests)
		userRoutes.GET("/wallet/balance", h.Transaction.GetBalance)
		userRoutes.POST("/wallet/add-funds", h.Transaction.AddFunds)
		userRoutes.GET("/transactions", h.Transaction.ListTransactions)
	}

	adminRoutes := api.Group("", requireAuth, requireAdmin)
	{
		adminRoutes.POST("/matches", h.Match.CreateMatch)
		adminRoutes.PUT("/matches/:id/status", h.Match.UpdateMatchStatus)
		adminRoutes.POST("/players", h.Match.CreatePlayer)
		adminRoutes.POST("/contests", h.Contest.CreateContest)
		adminRoutes.POST("/contests/:id/cancel", h.Contest.CancelContest)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins []string) {
	// Request ids first so every later log line carries one
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins))
}
