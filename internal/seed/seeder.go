package seed

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ecoexpedicoes/attractions-service/internal/domain/repository"
)

// Seeder loads the initial catalog on first startup.
type Seeder struct {
	attractionRepo repository.AttractionRepository
	logger         *zap.Logger
}

func NewSeeder(attractionRepo repository.AttractionRepository, logger *zap.Logger) *Seeder {
	return &Seeder{
		attractionRepo: attractionRepo,
		logger:         logger,
	}
}

// Run inserts the initial attractions when the table is completely empty,
// soft-deleted rows included. Errors are returned so the caller can log
// them, but seeding failure is not fatal to startup.
func (s *Seeder) Run(ctx context.Context) error {
	count, err := s.attractionRepo.CountAll(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Debug("Catalog already populated, skipping seed", zap.Int("count", count))
		return nil
	}

	attractions := InitialAttractions()
	now := time.Now().UTC()
	for _, a := range attractions {
		a.CreatedAt = now
		a.UpdatedAt = now
		a.IsActive = true
	}

	if err := s.attractionRepo.CreateBatch(ctx, attractions); err != nil {
		return err
	}

	s.logger.Info("Seeded initial attractions", zap.Int("count", len(attractions)))
	return nil
}
