package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/ecoexpedicoes/attractions-service/internal/config"
	"github.com/ecoexpedicoes/attractions-service/internal/delivery/http/handler"
	"github.com/ecoexpedicoes/attractions-service/internal/delivery/http/middleware"
)

// Server wires the Fiber app and the route table.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	attractionHandler *handler.AttractionHandler
	favoriteHandler   *handler.FavoriteHandler
	statsHandler      *handler.StatsHandler
	nearbyHandler     *handler.NearbyHandler
	statusHandler     *handler.StatusHandler
	healthHandler     *handler.HealthHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	attractionHandler *handler.AttractionHandler,
	favoriteHandler *handler.FavoriteHandler,
	statsHandler *handler.StatsHandler,
	nearbyHandler *handler.NearbyHandler,
	statusHandler *handler.StatusHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Attractions Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		attractionHandler: attractionHandler,
		favoriteHandler:   favoriteHandler,
		statsHandler:      statsHandler,
		nearbyHandler:     nearbyHandler,
		statusHandler:     statusHandler,
		healthHandler:     healthHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api")

	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Ecoexpedições API",
			"version": "1.0.0",
			"endpoints": []string{
				"/api/attractions - Tourist attractions",
				"/api/status - System status",
				"/swagger - API documentation",
			},
		})
	})

	api.Get("/health", s.healthHandler.Check)

	// Legacy status log
	api.Get("/status", s.statusHandler.List)
	api.Post("/status", s.statusHandler.Create)

	// Attractions. Fixed segments before the :id wildcard.
	attractions := api.Group("/attractions")
	attractions.Get("/", s.attractionHandler.List)
	attractions.Get("/categories", s.attractionHandler.GetCategories)
	attractions.Get("/difficulties", s.attractionHandler.GetDifficulties)
	attractions.Get("/stats", s.statsHandler.GetStatistics)
	attractions.Get("/nearby/:lat/:lon", s.nearbyHandler.Search)

	// Favorites
	attractions.Post("/favorites", s.favoriteHandler.Add)
	attractions.Get("/favorites/:user_id", s.favoriteHandler.ListByUser)
	attractions.Delete("/favorites/:user_id/:attraction_id", s.favoriteHandler.Remove)

	attractions.Get("/:id", s.attractionHandler.Get)
	attractions.Post("/", s.attractionHandler.Create)
	attractions.Put("/:id", s.attractionHandler.Update)
	attractions.Delete("/:id", s.attractionHandler.Delete)
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the underlying Fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
