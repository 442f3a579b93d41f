package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ecoexpedicoes/attractions-service/internal/pkg/utils"
	"github.com/ecoexpedicoes/attractions-service/internal/usecase"
)

// StatsHandler serves catalog aggregates.
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetStatistics godoc
// @Summary Get catalog statistics
// @Description Total, counts by category and difficulty, mean rating, top-5 names by rating
// @Tags Statistics
// @Produce json
// @Success 200 {object} domain.AttractionStats
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/attractions/stats [get]
func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	stats, err := h.statsUC.GetStatistics(c.Context())
	if err != nil {
		h.logger.Error("Failed to get statistics", zap.Error(err))
		return utils.SendError(c, err)
	}

	return c.JSON(stats)
}
