package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ecoexpedicoes/attractions-service/internal/domain"
	"github.com/ecoexpedicoes/attractions-service/internal/domain/repository"
)

const statusListLimit = 1000

// StatusUseCase serves the legacy status-check log.
type StatusUseCase struct {
	statusRepo repository.StatusRepository
	logger     *zap.Logger
}

func NewStatusUseCase(statusRepo repository.StatusRepository, logger *zap.Logger) *StatusUseCase {
	return &StatusUseCase{
		statusRepo: statusRepo,
		logger:     logger,
	}
}

func (uc *StatusUseCase) Create(ctx context.Context, clientName string) (*domain.StatusCheck, error) {
	check := &domain.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}

	if err := uc.statusRepo.Insert(ctx, check); err != nil {
		uc.logger.Error("Failed to create status check", zap.Error(err))
		return nil, err
	}

	return check, nil
}

func (uc *StatusUseCase) List(ctx context.Context) ([]*domain.StatusCheck, error) {
	return uc.statusRepo.List(ctx, statusListLimit)
}
