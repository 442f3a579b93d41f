package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ecoexpedicoes/attractions-service/internal/pkg/errors"
	"github.com/ecoexpedicoes/attractions-service/internal/pkg/utils"
	"github.com/ecoexpedicoes/attractions-service/internal/pkg/validator"
	"github.com/ecoexpedicoes/attractions-service/internal/usecase"
	"github.com/ecoexpedicoes/attractions-service/internal/usecase/dto"
)

// StatusHandler serves the legacy status-check log kept for early clients.
type StatusHandler struct {
	statusUC *usecase.StatusUseCase
	logger   *zap.Logger
}

func NewStatusHandler(statusUC *usecase.StatusUseCase, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{
		statusUC: statusUC,
		logger:   logger,
	}
}

// Create godoc
// @Summary Append a status check entry
// @Tags Status
// @Accept json
// @Produce json
// @Param status body dto.CreateStatusCheckRequest true "Status check payload"
// @Success 200 {object} domain.StatusCheck
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/status [post]
func (h *StatusHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateStatusCheckRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidBody)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	check, err := h.statusUC.Create(c.Context(), req.ClientName)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(check)
}

// List godoc
// @Summary List status check entries
// @Tags Status
// @Produce json
// @Success 200 {array} domain.StatusCheck
// @Router /api/status [get]
func (h *StatusHandler) List(c *fiber.Ctx) error {
	checks, err := h.statusUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(checks)
}
