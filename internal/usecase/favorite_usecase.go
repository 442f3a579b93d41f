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

// favoritesFetchLimit caps the per-user favorites fetch. The join is
// unbounded at the API level, so the cap is a defensive backstop.
const favoritesFetchLimit = 1000

// FavoriteUseCase manages the per-user favorites join.
type FavoriteUseCase struct {
	favoriteRepo   repository.FavoriteRepository
	attractionRepo repository.AttractionRepository
	logger         *zap.Logger
}

func NewFavoriteUseCase(
	favoriteRepo repository.FavoriteRepository,
	attractionRepo repository.AttractionRepository,
	logger *zap.Logger,
) *FavoriteUseCase {
	return &FavoriteUseCase{
		favoriteRepo:   favoriteRepo,
		attractionRepo: attractionRepo,
		logger:         logger,
	}
}

// Add favorites an attraction for a user. The target must exist and be
// active; the insert itself is conditional, so concurrent duplicates
// resolve to exactly one success and one conflict.
func (uc *FavoriteUseCase) Add(ctx context.Context, req dto.AddFavoriteRequest) (*domain.UserFavorite, error) {
	if _, err := uc.attractionRepo.GetByID(ctx, req.AttractionID); err != nil {
		return nil, err
	}

	favorite := &domain.UserFavorite{
		ID:           uuid.NewString(),
		UserID:       req.UserID,
		AttractionID: req.AttractionID,
		CreatedAt:    time.Now().UTC(),
	}

	if err := uc.favoriteRepo.Insert(ctx, favorite); err != nil {
		return nil, err
	}

	return favorite, nil
}

// ListAttractions returns the active attractions a user has favorited.
// Favorites pointing at soft-deleted attractions are silently dropped:
// the favorite row stays, the vanished target just doesn't appear.
func (uc *FavoriteUseCase) ListAttractions(ctx context.Context, userID string) ([]*domain.Attraction, error) {
	favorites, err := uc.favoriteRepo.ListByUser(ctx, userID, favoritesFetchLimit)
	if err != nil {
		uc.logger.Error("Failed to list favorites", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	if len(favorites) == 0 {
		return []*domain.Attraction{}, nil
	}

	ids := make([]string, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.AttractionID)
	}

	attractions, err := uc.attractionRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("Failed to fetch favorited attractions", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	return attractions, nil
}

func (uc *FavoriteUseCase) Remove(ctx context.Context, userID, attractionID string) error {
	return uc.favoriteRepo.Delete(ctx, userID, attractionID)
}
