package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/ecoexpedicoes/attractions-service/internal/domain"
	appErrors "github.com/ecoexpedicoes/attractions-service/internal/pkg/errors"
	"github.com/ecoexpedicoes/attractions-service/internal/usecase"
)

func sampleStats() *domain.AttractionStats {
	return &domain.AttractionStats{
		TotalAttractions: 6,
		ByCategory:       map[string]int{"Gruta": 1, "Rio": 2},
		ByDifficulty:     map[string]int{"Fácil": 3, "Moderado": 2},
		AverageRating:    4.68,
		MostPopular:      []string{"Rio da Prata", "Gruta do Lago Azul"},
	}
}

func TestStatsUseCase_GetStatistics(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("cache hit skips aggregation", func(t *testing.T) {
		repo := &MockAttractionRepository{}

		cache := &MockCacheRepository{}
		cache.On("GetStats", ctx).Return(sampleStats(), nil).Once()

		uc := usecase.NewStatsUseCase(repo, cache, logger, time.Minute)

		stats, err := uc.GetStatistics(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 6, stats.TotalAttractions)
		repo.AssertNotCalled(t, "Stats", mock.Anything)
	})

	t.Run("cache miss aggregates and caches", func(t *testing.T) {
		repo := &MockAttractionRepository{}
		repo.On("Stats", ctx).Return(sampleStats(), nil).Once()

		cache := &MockCacheRepository{}
		cache.On("GetStats", ctx).Return(nil, nil).Once()
		cache.On("SetStats", ctx, mock.Anything, time.Minute).Return(nil).Once()

		uc := usecase.NewStatsUseCase(repo, cache, logger, time.Minute)

		stats, err := uc.GetStatistics(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 4.68, stats.AverageRating)
		cache.AssertExpectations(t)
	})

	t.Run("cache failures never break the response", func(t *testing.T) {
		repo := &MockAttractionRepository{}
		repo.On("Stats", ctx).Return(sampleStats(), nil).Once()

		cache := &MockCacheRepository{}
		cache.On("GetStats", ctx).Return(nil, appErrors.ErrCacheError).Once()
		cache.On("SetStats", ctx, mock.Anything, mock.Anything).Return(appErrors.ErrCacheError).Once()

		uc := usecase.NewStatsUseCase(repo, cache, logger, time.Minute)

		stats, err := uc.GetStatistics(ctx)

		assert.NoError(t, err)
		assert.NotNil(t, stats)
	})

	t.Run("aggregation error propagates", func(t *testing.T) {
		repo := &MockAttractionRepository{}
		repo.On("Stats", ctx).Return(nil, appErrors.ErrDatabaseError).Once()

		uc := usecase.NewStatsUseCase(repo, noCache(), logger, time.Minute)

		stats, err := uc.GetStatistics(ctx)

		assert.ErrorIs(t, err, appErrors.ErrDatabaseError)
		assert.Nil(t, stats)
	})
}

func TestStatusUseCase(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("create stamps id and timestamp", func(t *testing.T) {
		repo := &MockStatusRepository{}
		repo.On("Insert", ctx, mock.MatchedBy(func(c *domain.StatusCheck) bool {
			return c.ID != "" && c.ClientName == "mobile-app" && !c.Timestamp.IsZero()
		})).Return(nil)

		uc := usecase.NewStatusUseCase(repo, logger)

		check, err := uc.Create(ctx, "mobile-app")

		assert.NoError(t, err)
		assert.Equal(t, "mobile-app", check.ClientName)
	})

	t.Run("list passes the fetch cap", func(t *testing.T) {
		repo := &MockStatusRepository{}
		repo.On("List", ctx, 1000).Return([]*domain.StatusCheck{
			{ID: "s1", ClientName: "mobile-app"},
		}, nil)

		uc := usecase.NewStatusUseCase(repo, logger)

		checks, err := uc.List(ctx)

		assert.NoError(t, err)
		assert.Len(t, checks, 1)
	})
}
