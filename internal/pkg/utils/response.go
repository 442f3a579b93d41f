package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecoexpedicoes/attractions-service/internal/pkg/errors"
)

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

// SendError maps AppError to its HTTP status; anything else becomes a
// generic 500 so internals never leak to the caller.
func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*errors.AppError); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}

// SendMessage responds with the legacy {"message": ...} payload the
// original clients expect from delete-style endpoints.
func SendMessage(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{"message": message})
}
