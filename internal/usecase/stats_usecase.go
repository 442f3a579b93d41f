package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ecoexpedicoes/attractions-service/internal/domain"
	"github.com/ecoexpedicoes/attractions-service/internal/domain/repository"
)

// StatsUseCase serves catalog aggregates, cached for a short TTL.
type StatsUseCase struct {
	attractionRepo repository.AttractionRepository
	cacheRepo      repository.CacheRepository
	logger         *zap.Logger
	cacheTTL       time.Duration
}

func NewStatsUseCase(
	attractionRepo repository.AttractionRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *StatsUseCase {
	return &StatsUseCase{
		attractionRepo: attractionRepo,
		cacheRepo:      cacheRepo,
		logger:         logger,
		cacheTTL:       cacheTTL,
	}
}

func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.AttractionStats, error) {
	cached, err := uc.cacheRepo.GetStats(ctx)
	if err != nil {
		uc.logger.Warn("Failed to get stats from cache", zap.Error(err))
	}
	if cached != nil {
		uc.logger.Debug("Statistics served from cache")
		return cached, nil
	}

	stats, err := uc.attractionRepo.Stats(ctx)
	if err != nil {
		uc.logger.Error("Failed to aggregate statistics", zap.Error(err))
		return nil, err
	}

	if err := uc.cacheRepo.SetStats(ctx, stats, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache stats", zap.Error(err))
	}

	return stats, nil
}
