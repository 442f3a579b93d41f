package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Pinger is any connection handle with a health probe.
type Pinger interface {
	Health(ctx context.Context) error
}

// HealthHandler reports liveness and database connectivity. It never fails
// at the transport level: an unreachable database is a structured
// "unhealthy" payload, still HTTP 200.
type HealthHandler struct {
	db     Pinger
	cache  Pinger
	logger *zap.Logger
}

func NewHealthHandler(db, cache Pinger, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

// Check godoc
// @Summary Liveness and database connectivity probe
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
	defer cancel()

	payload := fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"database":  "connected",
		"version":   "1.0.0",
	}

	if err := h.db.Health(ctx); err != nil {
		h.logger.Warn("Health check: database unreachable", zap.Error(err))
		payload["status"] = "unhealthy"
		payload["database"] = "disconnected"
		payload["error"] = err.Error()
		return c.JSON(payload)
	}

	if err := h.cache.Health(ctx); err != nil {
		// The cache is an accelerator, not a dependency: report it but
		// stay healthy.
		h.logger.Warn("Health check: cache unreachable", zap.Error(err))
		payload["cache"] = "disconnected"
	} else {
		payload["cache"] = "connected"
	}

	return c.JSON(payload)
}
