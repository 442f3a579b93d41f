package usecase

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/ecoexpedicoes/attractions-service/internal/domain"
	"github.com/ecoexpedicoes/attractions-service/internal/domain/repository"
	"github.com/ecoexpedicoes/attractions-service/internal/pkg/utils"
	"github.com/ecoexpedicoes/attractions-service/internal/usecase/dto"
)

const (
	defaultNearbyRadiusKm = 50
	defaultNearbyLimit    = 10
	nearbyScanLimit       = 1000
)

// NearbyUseCase is the naive proximity search: a linear scan over the
// active catalog with a planar distance approximation. There is no spatial
// index and no geodesic math; this holds up only because the catalog is
// small and confined to one region.
type NearbyUseCase struct {
	attractionRepo repository.AttractionRepository
	logger         *zap.Logger
}

func NewNearbyUseCase(
	attractionRepo repository.AttractionRepository,
	logger *zap.Logger,
) *NearbyUseCase {
	return &NearbyUseCase{
		attractionRepo: attractionRepo,
		logger:         logger,
	}
}

func (uc *NearbyUseCase) Search(ctx context.Context, req dto.NearbyAttractionsRequest) ([]*domain.NearbyAttraction, error) {
	radiusKm := float64(defaultNearbyRadiusKm)
	if req.RadiusKm != nil {
		radiusKm = *req.RadiusKm
	}
	limit := defaultNearbyLimit
	if req.Limit != nil {
		limit = *req.Limit
	}

	attractions, err := uc.attractionRepo.ListAllActive(ctx, nearbyScanLimit)
	if err != nil {
		uc.logger.Error("Failed to load attractions for proximity search", zap.Error(err))
		return nil, err
	}

	nearby := make([]*domain.NearbyAttraction, 0)
	for _, a := range attractions {
		// Records with malformed coordinate strings are skipped, never
		// surfaced: one bad record must not fail the whole search.
		lat, lon, ok := utils.ParseCoordinates(a.Coordinates)
		if !ok {
			uc.logger.Debug("Skipping attraction with unparseable coordinates",
				zap.String("id", a.ID),
				zap.String("coordinates", a.Coordinates),
			)
			continue
		}

		// The radius test uses the exact distance; only the stored value
		// is rounded. Rounding first would pull records just outside the
		// radius back inside it.
		distance := utils.PlanarDistanceKm(req.Lat, req.Lon, lat, lon)
		if distance > radiusKm {
			continue
		}

		nearby = append(nearby, &domain.NearbyAttraction{
			Attraction:         *a,
			CalculatedDistance: utils.Round2(distance),
		})
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].CalculatedDistance < nearby[j].CalculatedDistance
	})

	if len(nearby) > limit {
		nearby = nearby[:limit]
	}

	return nearby, nil
}
