package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ecoexpedicoes/attractions-service/internal/pkg/errors"
	"github.com/ecoexpedicoes/attractions-service/internal/pkg/utils"
	"github.com/ecoexpedicoes/attractions-service/internal/pkg/validator"
	"github.com/ecoexpedicoes/attractions-service/internal/usecase"
	"github.com/ecoexpedicoes/attractions-service/internal/usecase/dto"
)

// NearbyHandler serves the naive proximity search.
type NearbyHandler struct {
	nearbyUC *usecase.NearbyUseCase
	logger   *zap.Logger
}

func NewNearbyHandler(nearbyUC *usecase.NearbyUseCase, logger *zap.Logger) *NearbyHandler {
	return &NearbyHandler{
		nearbyUC: nearbyUC,
		logger:   logger,
	}
}

// Search godoc
// @Summary Find attractions near a point
// @Description Linear scan with a planar distance approximation, sorted ascending by distance
// @Tags Attractions
// @Produce json
// @Param lat path number true "Target latitude"
// @Param lon path number true "Target longitude"
// @Param radius_km query number false "Search radius in kilometers (default 50)"
// @Param limit query int false "Max results (1-50, default 10)"
// @Success 200 {array} domain.NearbyAttraction
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/attractions/nearby/{lat}/{lon} [get]
func (h *NearbyHandler) Search(c *fiber.Ctx) error {
	lat, err := strconv.ParseFloat(c.Params("lat"), 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}
	lon, err := strconv.ParseFloat(c.Params("lon"), 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	req := dto.NearbyAttractionsRequest{Lat: lat, Lon: lon}
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Malformed query parameters"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	nearby, err := h.nearbyUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(nearby)
}
