package repository

import (
	"context"

	"github.com/ecoexpedicoes/attractions-service/internal/domain"
)

// StatusRepository persists the legacy status-check log.
type StatusRepository interface {
	Insert(ctx context.Context, check *domain.StatusCheck) error
	List(ctx context.Context, limit int) ([]*domain.StatusCheck, error)
}
