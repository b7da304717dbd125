package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"botlist-backend/internal/common/config"
	"botlist-backend/internal/common/logger"
	"botlist-backend/internal/common/middleware"
	catalogHandler "botlist-backend/internal/features/catalog/delivery/http"
	catalogRepo "botlist-backend/internal/features/catalog/repository/postgres"
	catalogService "botlist-backend/internal/features/catalog/service"
	favoriteHandler "botlist-backend/internal/features/favorite/delivery/http"
	favoriteRepo "botlist-backend/internal/features/favorite/repository/postgres"
	favoriteService "botlist-backend/internal/features/favorite/service"
	reportHandler "botlist-backend/internal/features/report/delivery/http"
	reportRepo "botlist-backend/internal/features/report/repository/postgres"
	reportService "botlist-backend/internal/features/report/service"
	submissionHandler "botlist-backend/internal/features/submission/delivery/http"
	submissionRepo "botlist-backend/internal/features/submission/repository/postgres"
	submissionService "botlist-backend/internal/features/submission/service"
	subscriptionHandler "botlist-backend/internal/features/subscription/delivery/http"
	subscriptionRepo "botlist-backend/internal/features/subscription/repository/postgres"
	subscriptionService "botlist-backend/internal/features/subscription/service"
	userHandler "botlist-backend/internal/features/user/delivery/http"
	userRepo "botlist-backend/internal/features/user/repository/postgres"
	userService "botlist-backend/internal/features/user/service"
	"botlist-backend/internal/platform/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init("botlist-backend", cfg.Debug)
	logger.Info().Bool("debug", cfg.Debug).Msg("Starting BotList backend")

	postgresClient, err := postgres.NewClient(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer postgresClient.Close()

	schemaCtx, cancelSchema := context.WithTimeout(context.Background(), 30*time.Second)
	if err := postgresClient.EnsureSchema(schemaCtx); err != nil {
		cancelSchema()
		logger.Fatal().Err(err).Msg("Failed to apply migrations")
	}
	cancelSchema()
	logger.Info().Msg("Database ready")

	db := postgresClient.GetDB()
	userRepository := userRepo.NewPostgresRepository(db)
	catalogRepository := catalogRepo.NewPostgresRepository(db)
	submissionRepository := submissionRepo.NewPostgresRepository(db)
	favoriteRepository := favoriteRepo.NewPostgresRepository(db)
	subscriptionRepository := subscriptionRepo.NewPostgresRepository(db)
	reportRepository := reportRepo.NewPostgresRepository(db)

	userSvc := userService.NewUserService(userRepository, cfg, catalogRepository, submissionRepository)
	catalogSvc := catalogService.NewCatalogService(catalogRepository, userSvc)
	submissionSvc := submissionService.NewSubmissionService(submissionRepository, catalogRepository, userSvc, userSvc)
	favoriteSvc := favoriteService.NewFavoriteService(favoriteRepository, catalogRepository, userSvc, userRepository)
	subscriptionSvc := subscriptionService.NewSubscriptionService(subscriptionRepository, userSvc)
	reportSvc := reportService.NewReportService(reportRepository, catalogRepository, userSvc)

	logger.Info().Msg("Services initialized")

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept"}
	router.Use(cors.New(corsConfig))

	catalogHandler.NewCatalogHandler(catalogSvc).RegisterRoutes(router)
	userHandler.NewUserHandler(userSvc).RegisterRoutes(router)
	submissionHandler.NewSubmissionHandler(submissionSvc).RegisterRoutes(router)
	favoriteHandler.NewFavoriteHandler(favoriteSvc).RegisterRoutes(router)
	subscriptionHandler.NewSubscriptionHandler(subscriptionSvc).RegisterRoutes(router)
	reportHandler.NewReportHandler(reportSvc).RegisterRoutes(router)

	setupProbes(router, postgresClient)
	logger.Info().Msg("Routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}

func setupProbes(router *gin.Engine, postgresClient *postgres.Client) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   "botlist-backend",
		})
	})

	router.GET("/live", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	router.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := postgresClient.HealthCheck(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unready",
				"error":   "postgres unavailable",
				"details": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "ready",
			"timestamp": time.Now().UTC(),
			"service":   "botlist-backend",
		})
	})
}
