package main

// @title Ecoexpedições Attractions API
// @version 1.0.0
// @description Tourist attractions catalog for Bonito, MS: CRUD over the
// @description catalog, per-user favorites, aggregate statistics and a naive
// @description proximity search.

// @contact.name API Support
// @contact.email support@ecoexpedicoes.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/ecoexpedicoes/attractions-service/docs"
	"github.com/ecoexpedicoes/attractions-service/internal/config"
	httpDelivery "github.com/ecoexpedicoes/attractions-service/internal/delivery/http"
	"github.com/ecoexpedicoes/attractions-service/internal/delivery/http/handler"
	"github.com/ecoexpedicoes/attractions-service/internal/pkg/logger"
	"github.com/ecoexpedicoes/attractions-service/internal/repository/cache"
	"github.com/ecoexpedicoes/attractions-service/internal/repository/postgres"
	"github.com/ecoexpedicoes/attractions-service/internal/seed"
	"github.com/ecoexpedicoes/attractions-service/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Attractions Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// Repositories
	attractionRepo := postgres.NewAttractionRepository(db)
	favoriteRepo := postgres.NewFavoriteRepository(db)
	statusRepo := postgres.NewStatusRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// Populate the catalog on first startup. A seed failure is logged
	// and the service starts anyway.
	if cfg.Seed.Enabled {
		seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := seed.NewSeeder(attractionRepo, log).Run(seedCtx); err != nil {
			log.Error("Failed to seed initial attractions", zap.Error(err))
		}
		seedCancel()
	}

	// Use cases
	attractionUC := usecase.NewAttractionUseCase(attractionRepo, cacheRepo, log, cfg.Cache.LookupCacheTTL)
	statsUC := usecase.NewStatsUseCase(attractionRepo, cacheRepo, log, cfg.Cache.StatsCacheTTL)
	favoriteUC := usecase.NewFavoriteUseCase(favoriteRepo, attractionRepo, log)
	nearbyUC := usecase.NewNearbyUseCase(attractionRepo, log)
	statusUC := usecase.NewStatusUseCase(statusRepo, log)

	log.Info("Use cases initialized")

	// HTTP handlers
	attractionHandler := handler.NewAttractionHandler(attractionUC, log)
	favoriteHandler := handler.NewFavoriteHandler(favoriteUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)
	nearbyHandler := handler.NewNearbyHandler(nearbyUC, log)
	statusHandler := handler.NewStatusHandler(statusUC, log)
	healthHandler := handler.NewHealthHandler(db, redisClient, log)

	server := httpDelivery.NewServer(
		cfg,
		log,
		attractionHandler,
		favoriteHandler,
		statsHandler,
		nearbyHandler,
		statusHandler,
		healthHandler,
	)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
