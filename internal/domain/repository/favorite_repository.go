package repository

import (
	"context"

	"github.com/ecoexpedicoes/attractions-service/internal/domain"
)

// FavoriteRepository persists the per-user favorites join.
type FavoriteRepository interface {
	// Insert adds the favorite unless the (user_id, attraction_id) pair
	// already exists. Returns ErrFavoriteExists on the duplicate, with no
	// window between check and write.
	Insert(ctx context.Context, favorite *domain.UserFavorite) error

	// ListByUser returns up to limit favorite rows for the user.
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.UserFavorite, error)

	// Delete hard-deletes the favorite. Returns ErrFavoriteNotFound when
	// no row matches.
	Delete(ctx context.Context, userID, attractionID string) error
}
