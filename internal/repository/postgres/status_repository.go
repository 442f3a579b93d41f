package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/ecoexpedicoes/attractions-service/internal/domain"
	"github.com/ecoexpedicoes/attractions-service/internal/domain/repository"
	"github.com/ecoexpedicoes/attractions-service/internal/pkg/errors"
)

type statusRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewStatusRepository(db *DB) repository.StatusRepository {
	return &statusRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *statusRepository) Insert(ctx context.Context, check *domain.StatusCheck) error {
	query := `
		INSERT INTO status_checks (id, client_name, timestamp)
		VALUES ($1, $2, $3)`

	if _, err := r.db.ExecContext(ctx, query, check.ID, check.ClientName, check.Timestamp); err != nil {
		r.logger.Error("Failed to insert status check", zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *statusRepository) List(ctx context.Context, limit int) ([]*domain.StatusCheck, error) {
	query := `
		SELECT id, client_name, timestamp
		FROM status_checks
		LIMIT $1`

	checks := make([]*domain.StatusCheck, 0)
	if err := r.db.SelectContext(ctx, &checks, query, limit); err != nil {
		r.logger.Error("Failed to list status checks", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return checks, nil
}
