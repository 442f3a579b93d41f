package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/ecoexpedicoes/attractions-service/internal/domain"
	"github.com/ecoexpedicoes/attractions-service/internal/domain/repository"
	"github.com/ecoexpedicoes/attractions-service/internal/pkg/errors"
)

type favoriteRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewFavoriteRepository(db *DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *favoriteRepository) Insert(ctx context.Context, favorite *domain.UserFavorite) error {
	// Conditional insert against the unique (user_id, attraction_id)
	// index. Concurrent identical requests cannot both succeed.
	query := `
		INSERT INTO favorites (id, user_id, attraction_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, attraction_id) DO NOTHING`

	result, err := r.db.ExecContext(ctx, query,
		favorite.ID, favorite.UserID, favorite.AttractionID, favorite.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to insert favorite",
			zap.String("user_id", favorite.UserID),
			zap.String("attraction_id", favorite.AttractionID),
			zap.Error(err),
		)
		return errors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read insert result", zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrFavoriteExists
	}

	return nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.UserFavorite, error) {
	query := `
		SELECT id, user_id, attraction_id, created_at
		FROM favorites
		WHERE user_id = $1
		LIMIT $2`

	favorites := make([]*domain.UserFavorite, 0)
	if err := r.db.SelectContext(ctx, &favorites, query, userID, limit); err != nil {
		r.logger.Error("Failed to list favorites", zap.String("user_id", userID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return favorites, nil
}

func (r *favoriteRepository) Delete(ctx context.Context, userID, attractionID string) error {
	query := "DELETE FROM favorites WHERE user_id = $1 AND attraction_id = $2"

	result, err := r.db.ExecContext(ctx, query, userID, attractionID)
	if err != nil {
		r.logger.Error("Failed to delete favorite",
			zap.String("user_id", userID),
			zap.String("attraction_id", attractionID),
			zap.Error(err),
		)
		return errors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read delete result", zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrFavoriteNotFound
	}

	return nil
}
