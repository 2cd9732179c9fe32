package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/usecase/auth"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/usecase/contest"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/usecase/leaderboard"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/usecase/match"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/usecase/team"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/domain/usecase/wallet"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/repository/memory"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/scheduler"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/security"
	timeProvider "github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/config"
)

const serviceName = "fantasy-cricket"

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(logger.Options{
		Production: cfg.Environment == config.Production || cfg.Logger.Format == "json",
		Level:      cfg.Logger.Level,
		Service:    serviceName,
	})
	defer func() { _ = appLogger.Flush() }()
	appLogger.Info("Starting service", map[string]any{
		"environment": cfg.Environment,
		"storage":     cfg.Database.Storage,
		"log_level":   appLogger.GetLevel().String(),
	})

	tp :=timeProvider.NewRealTimeProvider()
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	retryConfig := database.DefaultRetryConfig()
	retryConfig.MaxRetries = cfg.Join.MaxRetries

	uow, dbPinger, closeStorage, err := setupStorage(rootCtx, cfg, retryConfig, appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to initialize storage", map[string]any{
			"storage": cfg.Database.Storage,
			"error":   err.Error(),
		})
		os.Exit(1)
	}
	defer closeStorage()

	leaderboardCache, closeCache := setupCache(rootCtx, cfg, appLogger)
	defer closeCache()

	// Security adapters
	ids := idgen.NewUUIDGenerator()
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens, err := security.NewJWTTokenService(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL, tp)
	if err != nil {
		appLogger.Error("Failed to initialize token service", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize use cases
	authService := auth.NewService(uow, hasher, tokens, ids, tp, appLogger)
	ledger := wallet.NewLedger(uow, ids, tp, appLogger)
	walletService := wallet.NewService(uow, ledger, ids, appLogger)
	matchService := match.NewService(uow, ids, tp, appLogger)
	teamService := team.NewService(uow, ids, tp, appLogger)
	contestService := contest.NewService(uow, ledger, leaderboardCache, ids, tp, appLogger)
	lifecycle := contest.NewLifecycle(uow, contestService.Registry, tp, appLogger)
	leaderboardBuilder := leaderboard.NewBuilder(uow, leaderboardCache, appLogger, leaderboard.DefaultLookupConcurrency)

	// Seed the first administrator
	created, err := migration.CreateDefaultAdmin(rootCtx, authService, migration.BootstrapAdmin{
		Username: cfg.Bootstrap.AdminUsername,
		Email:    cfg.Bootstrap.AdminEmail,
		Password: cfg.Bootstrap.AdminPassword,
	})
	if err != nil {
		appLogger.Error("Failed to create bootstrap admin", map[string]any{
			"error": err.Error(),
		})
	} else if created {
		appLogger.Info("Bootstrap admin created", map[string]any{
			"username": cfg.Bootstrap.AdminUsername,
		})
	}

	// Contest lifecycle job
	if cfg.Scheduler.Enabled {
		lifecycleScheduler, err := scheduler.NewLifecycleScheduler(lifecycle, cfg.Scheduler.Interval, appLogger)
		if err != nil {
			appLogger.Error("Failed to create lifecycle scheduler", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		if err := lifecycleScheduler.Start(rootCtx); err != nil {
			appLogger.Error("Failed to start lifecycle scheduler", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		defer func() {
			if err := lifecycleScheduler.Stop(); err != nil {
				appLogger.Warn("Lifecycle scheduler did not stop cleanly", map[string]any{
					"error": err.Error(),
				})
			}
		}()
	}

	// Initialize API handlers
	handlers := routes.Handlers{
		User:        handler.NewUserHandler(authService, appLogger),
		Transaction: handler.NewTransactionHandler(walletService, appLogger),
		Match:       handler.NewMatchHandler(matchService, appLogger),
		Team:        handler.NewTeamHandler(teamService, appLogger),
		Contest:     handler.NewContestHandler(contestService, leaderboardBuilder, appLogger),
		Health:      handler.NewHealthHandler(dbPinger, appLogger),
	}

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, cfg.Server.AllowedOrigins)
	routes.SetupRoutes(router, handlers, authService)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":    server.Addr,
			"env":     cfg.Environment,
			"storage": cfg.Database.Storage,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for an interrupt signal or a listener failure
	select {
	case <-rootCtx.Done():
	case err := <-serverErr:
		appLogger.Error("Failed to start server", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// setupStorage connects the configured persistence adapter. The returned pinger is nil
// for the in-memory store.
func setupStorage(
	ctx context.Context,
	cfg *config.Config,
	retryConfig database.RetryConfig,
	appLogger coreport.Logger,
	tp coreport.TimeProvider,
) (persistence.UnitOfWork, handler.Pinger, func(), error) {
	if cfg.Database.Storage == config.StorageMemory {
		appLogger.Warn("Using in-memory storage, data is lost on restart", nil)
		return memory.NewStore(tp, appLogger), nil, func() {}, nil
	}

	dbManager := database.NewManager(database.FromAppConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return nil, nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	closeDB := func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Warn("Failed to close database", map[string]any{
				"error": err.Error(),
			})
		}
	}

	if err := dbManager.MigrationManager().MigrateAll(); err != nil {
		closeDB()
		return nil, nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	return dbManager.CreateUnitOfWork(retryConfig), dbManager, closeDB, nil
}

// setupCache returns the Redis leaderboard cache, or a no-op cache when Redis is disabled
// or unreachable. Leaderboards are always computable from storage.
func setupCache(ctx context.Context, cfg *config.Config, appLogger coreport.Logger) (persistence.LeaderboardCache, func()) {
	if !cfg.Redis.Enabled {
		return cache.NoopLeaderboardCache{}, func() {}
	}

	client, err := cache.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		appLogger.Warn("Redis unavailable, leaderboard cache disabled", map[string]any{
			"addr":  cfg.Redis.Addr,
			"error": err.Error(),
		})
		return cache.NoopLeaderboardCache{}, func() {}
	}

	appLogger.Info("Leaderboard cache enabled", map[string]any{
		"addr": cfg.Redis.Addr,
		"ttl":  cfg.Redis.LeaderboardTTL.String(),
	})
	return cache.NewRedisLeaderboardCache(client, cfg.Redis.LeaderboardTTL, appLogger), func() {
		_ = client.Close()
	}
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Environment should be set with a valid value
	if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	switch cfg.Database.Storage {
	case config.StoragePostgres:
		if cfg.Database.Host == "" {
			missingConfigs = append(missingConfigs, "database.host (or FC_DB_HOST environment variable)")
		}
		if cfg.Database.Username == "" {
			missingConfigs = append(missingConfigs, "database.username (or FC_DB_USERNAME environment variable)")
		}
		if cfg.Database.Password == "" {
			missingConfigs = append(missingConfigs, "database.password (or FC_DB_PASSWORD environment variable)")
		}
		if cfg.Database.Database == "" {
			missingConfigs = append(missingConfigs, "database.database (or FC_DB_NAME environment variable)")
		}
		if cfg.Database.QueryTimeout == 0 {
			missingConfigs = append(missingConfigs, "database.queryTimeout")
		}
	case config.StorageMemory:
		if cfg.Environment == config.Production {
			return fmt.Errorf("database.storage %q is not allowed in production", config.StorageMemory)
		}
	default:
		return fmt.Errorf("invalid database.storage value: %s, must be %s or %s",
			cfg.Database.Storage, config.StoragePostgres, config.StorageMemory)
	}

	if len(cfg.Auth.JWTSecret) < security.MinSecretLength {
		missingConfigs = append(missingConfigs,
			fmt.Sprintf("auth.jwtSecret of at least %d bytes (or FC_JWT_SECRET environment variable)", security.MinSecretLength))
	}
	if cfg.Auth.TokenTTL <= 0 {
		missingConfigs = append(missingConfigs, "auth.tokenTTL")
	}

	if cfg.Scheduler.Enabled && cfg.Scheduler.Interval <= 0 {
		missingConfigs = append(missingConfigs, "scheduler.interval")
	}
	if cfg.Join.MaxRetries <= 0 {
		missingConfigs = append(missingConfigs, "join.maxRetries")
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		for _, origin := range cfg.Server.AllowedOrigins {
			if origin == "*" {
				warnings = append(warnings, "server.allowedOrigins allows every origin")
				break
			}
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
