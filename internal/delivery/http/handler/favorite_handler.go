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

// FavoriteHandler serves the per-user favorites join.
type FavoriteHandler struct {
	favoriteUC *usecase.FavoriteUseCase
	logger     *zap.Logger
}

func NewFavoriteHandler(favoriteUC *usecase.FavoriteUseCase, logger *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: favoriteUC,
		logger:     logger,
	}
}

// Add godoc
// @Summary Add an attraction to a user's favorites
// @Tags Favorites
// @Accept json
// @Produce json
// @Param favorite body dto.AddFavoriteRequest true "Favorite payload"
// @Success 200 {object} domain.UserFavorite
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/attractions/favorites [post]
func (h *FavoriteHandler) Add(c *fiber.Ctx) error {
	var req dto.AddFavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidBody)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	favorite, err := h.favoriteUC.Add(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(favorite)
}

// ListByUser godoc
// @Summary List a user's favorite attractions
// @Description Returns the active attractions the user has favorited; soft-deleted targets are omitted
// @Tags Favorites
// @Produce json
// @Param user_id path string true "User id"
// @Success 200 {array} domain.Attraction
// @Router /api/attractions/favorites/{user_id} [get]
func (h *FavoriteHandler) ListByUser(c *fiber.Ctx) error {
	attractions, err := h.favoriteUC.ListAttractions(c.Context(), c.Params("user_id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(attractions)
}

// Remove godoc
// @Summary Remove an attraction from a user's favorites
// @Tags Favorites
// @Produce json
// @Param user_id path string true "User id"
// @Param attraction_id path string true "Attraction id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/attractions/favorites/{user_id}/{attraction_id} [delete]
func (h *FavoriteHandler) Remove(c *fiber.Ctx) error {
	err := h.favoriteUC.Remove(c.Context(), c.Params("user_id"), c.Params("attraction_id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendMessage(c, "Favorite removed successfully")
}
