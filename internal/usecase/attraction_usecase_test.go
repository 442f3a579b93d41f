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
	"github.com/ecoexpedicoes/attractions-service/internal/usecase/dto"
)

func strPtr(s string) *string       { return &s }
func intPtr(i int) *int             { return &i }
func floatPtr(f float64) *float64   { return &f }
func boolPtr(b bool) *bool          { return &b }
func slicePtr(s []string) *[]string { return &s }

func TestAttractionUseCase_List(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("applies default limit", func(t *testing.T) {
		repo := &MockAttractionRepository{}
		repo.On("List", ctx, mock.MatchedBy(func(f domain.AttractionFilter) bool {
			return f.Limit == 50 && f.Skip == 0
		})).Return([]*domain.Attraction{}, nil)

		uc := usecase.NewAttractionUseCase(repo, noCache(), logger, time.Minute)

		_, err := uc.List(ctx, dto.ListAttractionsRequest{})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("passes filters through", func(t *testing.T) {
		repo := &MockAttractionRepository{}
		repo.On("List", ctx, mock.MatchedBy(func(f domain.AttractionFilter) bool {
			return f.Category == "Gruta" &&
				f.Difficulty == "Fácil" &&
				f.RatingMin != nil && *f.RatingMin == 4.0 &&
				f.Search == "lago" &&
				f.Limit == 20 && f.Skip == 10
		})).Return([]*domain.Attraction{}, nil)

		uc := usecase.NewAttractionUseCase(repo, noCache(), logger, time.Minute)

		_, err := uc.List(ctx, dto.ListAttractionsRequest{
			Category:   "Gruta",
			Difficulty: "Fácil",
			RatingMin:  floatPtr(4.0),
			Search:     "lago",
			Limit:      intPtr(20),
			Skip:       10,
		})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestAttractionUseCase_Create(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("fills defaults and marks active", func(t *testing.T) {
		repo := &MockAttractionRepository{}
		repo.On("Create", ctx, mock.MatchedBy(func(a *domain.Attraction) bool {
			return a.ID != "" &&
				a.IsActive &&
				!a.CreatedAt.IsZero() &&
				a.CreatedAt.Equal(a.UpdatedAt) &&
				a.Photos != nil && len(a.Photos) == 0 &&
				a.Tips != nil && len(a.Tips) == 0
		})).Return(nil)

		cache := noCache()
		uc := usecase.NewAttractionUseCase(repo, cache, logger, time.Minute)

		created, err := uc.Create(ctx, dto.CreateAttractionRequest{
			Name:        "Estância Mimosa",
			Duration:    "5 horas",
			Difficulty:  "Fácil",
			Description: "Trilha com oito cachoeiras",
			Distance:    "25 km do centro",
			Coordinates: "-21.05, -56.45",
			Category:    "Cachoeira",
			Price:       "R$ 250,00",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		cache.AssertCalled(t, "InvalidateCatalog", mock.Anything)
	})

	t.Run("keeps a caller-supplied id", func(t *testing.T) {
		repo := &MockAttractionRepository{}
		repo.On("Create", ctx, mock.MatchedBy(func(a *domain.Attraction) bool {
			return a.ID == "estancia-mimosa"
		})).Return(nil)

		uc := usecase.NewAttractionUseCase(repo, noCache(), logger, time.Minute)

		created, err := uc.Create(ctx, dto.CreateAttractionRequest{
			ID:          "estancia-mimosa",
			Name:        "Estância Mimosa",
			Duration:    "5 horas",
			Difficulty:  "Fácil",
			Description: "Trilha com oito cachoeiras",
			Distance:    "25 km do centro",
			Coordinates: "-21.05, -56.45",
			Category:    "Cachoeira",
			Price:       "R$ 250,00",
		})

		assert.NoError(t, err)
		assert.Equal(t, "estancia-mimosa", created.ID)
	})

	t.Run("repo error skips cache invalidation", func(t *testing.T) {
		repo := &MockAttractionRepository{}
		repo.On("Create", ctx, mock.Anything).Return(appErrors.ErrDatabaseError)

		cache := &MockCacheRepository{}
		uc := usecase.NewAttractionUseCase(repo, cache, logger, time.Minute)

		_, err := uc.Create(ctx, dto.CreateAttractionRequest{Name: "x"})

		assert.ErrorIs(t, err, appErrors.ErrDatabaseError)
		cache.AssertNotCalled(t, "InvalidateCatalog", mock.Anything)
	})
}

func TestAttractionUseCase_Update(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("maps only provided fields", func(t *testing.T) {
		updated := activeAttraction("gruta-lago-azul", "-21.1167, -56.4833")
		updated.Rating = 5.0

		repo := &MockAttractionRepository{}
		repo.On("Update", ctx, "gruta-lago-azul", mock.MatchedBy(func(u domain.AttractionUpdate) bool {
			return u.Rating != nil && *u.Rating == 5.0 &&
				u.Name == nil && u.IsActive == nil && u.Photos == nil
		})).Return(updated, nil)

		cache := noCache()
		uc := usecase.NewAttractionUseCase(repo, cache, logger, time.Minute)

		result, err := uc.Update(ctx, "gruta-lago-azul", dto.UpdateAttractionRequest{
			Rating: floatPtr(5.0),
		})

		assert.NoError(t, err)
		assert.Equal(t, 5.0, result.Rating)
		cache.AssertCalled(t, "InvalidateCatalog", mock.Anything)
	})

	t.Run("carries slice and bool fields", func(t *testing.T) {
		updated := activeAttraction("rio-sucuri", "-21.25, -56.55")

		repo := &MockAttractionRepository{}
		repo.On("Update", ctx, "rio-sucuri", mock.MatchedBy(func(u domain.AttractionUpdate) bool {
			return u.IsActive != nil && !*u.IsActive &&
				u.Tips != nil && len(*u.Tips) == 1
		})).Return(updated, nil)

		uc := usecase.NewAttractionUseCase(repo, noCache(), logger, time.Minute)

		_, err := uc.Update(ctx, "rio-sucuri", dto.UpdateAttractionRequest{
			IsActive: boolPtr(false),
			Tips:     slicePtr([]string{"Leve protetor solar"}),
		})

		assert.NoError(t, err)
	})

	t.Run("not found propagates", func(t *testing.T) {
		repo := &MockAttractionRepository{}
		repo.On("Update", ctx, "ghost", mock.Anything).
			Return(nil, appErrors.ErrAttractionNotFound)

		cache := &MockCacheRepository{}
		uc := usecase.NewAttractionUseCase(repo, cache, logger, time.Minute)

		_, err := uc.Update(ctx, "ghost", dto.UpdateAttractionRequest{Name: strPtr("x")})

		assert.ErrorIs(t, err, appErrors.ErrAttractionNotFound)
		cache.AssertNotCalled(t, "InvalidateCatalog", mock.Anything)
	})
}

func TestAttractionUseCase_Delete(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("soft delete invalidates cache", func(t *testing.T) {
		repo := &MockAttractionRepository{}
		repo.On("SoftDelete", ctx, "gruta-lago-azul").Return(nil)

		cache := noCache()
		uc := usecase.NewAttractionUseCase(repo, cache, logger, time.Minute)

		assert.NoError(t, uc.Delete(ctx, "gruta-lago-azul"))
		cache.AssertCalled(t, "InvalidateCatalog", mock.Anything)
	})

	t.Run("not found propagates", func(t *testing.T) {
		repo := &MockAttractionRepository{}
		repo.On("SoftDelete", ctx, "ghost").Return(appErrors.ErrAttractionNotFound)

		uc := usecase.NewAttractionUseCase(repo, noCache(), logger, time.Minute)

		assert.ErrorIs(t, uc.Delete(ctx, "ghost"), appErrors.ErrAttractionNotFound)
	})
}

func TestAttractionUseCase_Lookups(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("cache miss fetches and caches", func(t *testing.T) {
		repo := &MockAttractionRepository{}
		repo.On("Categories", ctx).Return([]string{"Gruta", "Rio"}, nil).Once()

		cache := &MockCacheRepository{}
		cache.On("GetLookup", ctx, "categories").Return(nil, nil).Once()
		cache.On("SetLookup", ctx, "categories", []string{"Gruta", "Rio"}, time.Minute).Return(nil).Once()

		uc := usecase.NewAttractionUseCase(repo, cache, logger, time.Minute)

		categories, err := uc.Categories(ctx)

		assert.NoError(t, err)
		assert.Equal(t, []string{"Gruta", "Rio"}, categories)
		cache.AssertExpectations(t)
	})

	t.Run("cache hit skips the repo", func(t *testing.T) {
		repo := &MockAttractionRepository{}

		cache := &MockCacheRepository{}
		cache.On("GetLookup", ctx, "difficulties").Return([]string{"Fácil", "Moderado"}, nil).Once()

		uc := usecase.NewAttractionUseCase(repo, cache, logger, time.Minute)

		difficulties, err := uc.Difficulties(ctx)

		assert.NoError(t, err)
		assert.Equal(t, []string{"Fácil", "Moderado"}, difficulties)
		repo.AssertNotCalled(t, "Difficulties", mock.Anything)
	})

	t.Run("cache read error falls back to the repo", func(t *testing.T) {
		repo := &MockAttractionRepository{}
		repo.On("Categories", ctx).Return([]string{"Gruta"}, nil).Once()

		cache := &MockCacheRepository{}
		cache.On("GetLookup", ctx, "categories").Return(nil, appErrors.ErrCacheError).Once()
		cache.On("SetLookup", ctx, "categories", mock.Anything, mock.Anything).Return(nil).Once()

		uc := usecase.NewAttractionUseCase(repo, cache, logger, time.Minute)

		categories, err := uc.Categories(ctx)

		assert.NoError(t, err)
		assert.Equal(t, []string{"Gruta"}, categories)
	})
}
