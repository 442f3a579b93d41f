package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ecoexpedicoes/attractions-service/internal/domain"
	"github.com/ecoexpedicoes/attractions-service/internal/domain/repository"
	"github.com/ecoexpedicoes/attractions-service/internal/usecase/dto"
)

const (
	defaultListLimit = 50

	lookupCategories   = "categories"
	lookupDifficulties = "difficulties"
)

// AttractionUseCase covers catalog CRUD and the category/difficulty
// enumerations.
type AttractionUseCase struct {
	attractionRepo repository.AttractionRepository
	cacheRepo      repository.CacheRepository
	logger         *zap.Logger
	lookupTTL      time.Duration
}

func NewAttractionUseCase(
	attractionRepo repository.AttractionRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	lookupTTL time.Duration,
) *AttractionUseCase {
	return &AttractionUseCase{
		attractionRepo: attractionRepo,
		cacheRepo:      cacheRepo,
		logger:         logger,
		lookupTTL:      lookupTTL,
	}
}

func (uc *AttractionUseCase) List(ctx context.Context, req dto.ListAttractionsRequest) ([]*domain.Attraction, error) {
	filter := domain.AttractionFilter{
		Category:   req.Category,
		Difficulty: req.Difficulty,
		RatingMin:  req.RatingMin,
		RatingMax:  req.RatingMax,
		Search:     req.Search,
		Limit:      defaultListLimit,
		Skip:       req.Skip,
	}
	if req.Limit != nil {
		filter.Limit = *req.Limit
	}

	attractions, err := uc.attractionRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("Failed to list attractions", zap.Error(err))
		return nil, err
	}

	return attractions, nil
}

func (uc *AttractionUseCase) Get(ctx context.Context, id string) (*domain.Attraction, error) {
	return uc.attractionRepo.GetByID(ctx, id)
}

func (uc *AttractionUseCase) Create(ctx context.Context, req dto.CreateAttractionRequest) (*domain.Attraction, error) {
	now := time.Now().UTC()

	attraction := &domain.Attraction{
		ID:              req.ID,
		Name:            req.Name,
		Image:           req.Image,
		Photos:          emptyIfNil(req.Photos),
		Duration:        req.Duration,
		Activities:      emptyIfNil(req.Activities),
		Difficulty:      req.Difficulty,
		Rating:          req.Rating,
		Description:     req.Description,
		Distance:        req.Distance,
		Coordinates:     req.Coordinates,
		FullDescription: req.FullDescription,
		Curiosities:     emptyIfNil(req.Curiosities),
		Tips:            emptyIfNil(req.Tips),
		Category:        req.Category,
		Price:           req.Price,
		CreatedAt:       now,
		UpdatedAt:       now,
		IsActive:        true,
	}
	if attraction.ID == "" {
		attraction.ID = uuid.NewString()
	}

	if err := uc.attractionRepo.Create(ctx, attraction); err != nil {
		uc.logger.Error("Failed to create attraction", zap.String("id", attraction.ID), zap.Error(err))
		return nil, err
	}

	uc.invalidateCatalogCache(ctx)

	return attraction, nil
}

func (uc *AttractionUseCase) Update(ctx context.Context, id string, req dto.UpdateAttractionRequest) (*domain.Attraction, error) {
	update := domain.AttractionUpdate{
		Name:            req.Name,
		Image:           req.Image,
		Photos:          req.Photos,
		Duration:        req.Duration,
		Activities:      req.Activities,
		Difficulty:      req.Difficulty,
		Rating:          req.Rating,
		Description:     req.Description,
		Distance:        req.Distance,
		Coordinates:     req.Coordinates,
		FullDescription: req.FullDescription,
		Curiosities:     req.Curiosities,
		Tips:            req.Tips,
		Category:        req.Category,
		Price:           req.Price,
		IsActive:        req.IsActive,
	}

	attraction, err := uc.attractionRepo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	uc.invalidateCatalogCache(ctx)

	return attraction, nil
}

func (uc *AttractionUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.attractionRepo.SoftDelete(ctx, id); err != nil {
		return err
	}

	uc.invalidateCatalogCache(ctx)

	return nil
}

func (uc *AttractionUseCase) Categories(ctx context.Context) ([]string, error) {
	return uc.lookup(ctx, lookupCategories, uc.attractionRepo.Categories)
}

func (uc *AttractionUseCase) Difficulties(ctx context.Context) ([]string, error) {
	return uc.lookup(ctx, lookupDifficulties, uc.attractionRepo.Difficulties)
}

func (uc *AttractionUseCase) lookup(
	ctx context.Context,
	name string,
	fetch func(context.Context) ([]string, error),
) ([]string, error) {
	cached, err := uc.cacheRepo.GetLookup(ctx, name)
	if err != nil {
		uc.logger.Warn("Failed to read lookup from cache", zap.String("name", name), zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	values, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.cacheRepo.SetLookup(ctx, name, values, uc.lookupTTL); err != nil {
		uc.logger.Warn("Failed to cache lookup", zap.String("name", name), zap.Error(err))
	}

	return values, nil
}

// invalidateCatalogCache drops cached aggregates after a write. Cache
// errors are logged, never surfaced: the write already happened.
func (uc *AttractionUseCase) invalidateCatalogCache(ctx context.Context) {
	if err := uc.cacheRepo.InvalidateCatalog(ctx); err != nil {
		uc.logger.Warn("Failed to invalidate catalog cache", zap.Error(err))
	}
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
