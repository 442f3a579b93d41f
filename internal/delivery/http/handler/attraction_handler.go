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

// AttractionHandler serves the catalog CRUD and enumeration endpoints.
type AttractionHandler struct {
	attractionUC *usecase.AttractionUseCase
	logger       *zap.Logger
}

func NewAttractionHandler(attractionUC *usecase.AttractionUseCase, logger *zap.Logger) *AttractionHandler {
	return &AttractionHandler{
		attractionUC: attractionUC,
		logger:       logger,
	}
}

// List godoc
// @Summary List attractions
// @Description Lists active attractions with optional filtering and pagination
// @Tags Attractions
// @Produce json
// @Param category query string false "Exact category match"
// @Param difficulty query string false "Exact difficulty match"
// @Param rating_min query number false "Minimum rating (0-5)"
// @Param rating_max query number false "Maximum rating (0-5)"
// @Param search query string false "Substring search in name and descriptions"
// @Param limit query int false "Page size (1-100, default 50)"
// @Param skip query int false "Offset (default 0)"
// @Success 200 {array} domain.Attraction
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/attractions [get]
func (h *AttractionHandler) List(c *fiber.Ctx) error {
	var req dto.ListAttractionsRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Malformed query parameters"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	attractions, err := h.attractionUC.List(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(attractions)
}

// GetCategories godoc
// @Summary List distinct categories
// @Tags Attractions
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /api/attractions/categories [get]
func (h *AttractionHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.attractionUC.Categories(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(fiber.Map{"categories": categories})
}

// GetDifficulties godoc
// @Summary List distinct difficulty levels
// @Tags Attractions
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /api/attractions/difficulties [get]
func (h *AttractionHandler) GetDifficulties(c *fiber.Ctx) error {
	difficulties, err := h.attractionUC.Difficulties(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(fiber.Map{"difficulties": difficulties})
}

// Get godoc
// @Summary Get one attraction
// @Tags Attractions
// @Produce json
// @Param id path string true "Attraction id"
// @Success 200 {object} domain.Attraction
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/attractions/{id} [get]
func (h *AttractionHandler) Get(c *fiber.Ctx) error {
	attraction, err := h.attractionUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(attraction)
}

// Create godoc
// @Summary Create an attraction
// @Tags Attractions
// @Accept json
// @Produce json
// @Param attraction body dto.CreateAttractionRequest true "Attraction payload"
// @Success 200 {object} domain.Attraction
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/attractions [post]
func (h *AttractionHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAttractionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidBody)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	attraction, err := h.attractionUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(attraction)
}

// Update godoc
// @Summary Partially update an attraction
// @Description Applies only the fields present in the payload
// @Tags Attractions
// @Accept json
// @Produce json
// @Param id path string true "Attraction id"
// @Param attraction body dto.UpdateAttractionRequest true "Partial payload"
// @Success 200 {object} domain.Attraction
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/attractions/{id} [put]
func (h *AttractionHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateAttractionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidBody)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	attraction, err := h.attractionUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(attraction)
}

// Delete godoc
// @Summary Soft-delete an attraction
// @Tags Attractions
// @Produce json
// @Param id path string true "Attraction id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/attractions/{id} [delete]
func (h *AttractionHandler) Delete(c *fiber.Ctx) error {
	if err := h.attractionUC.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendMessage(c, "Attraction deleted successfully")
}
