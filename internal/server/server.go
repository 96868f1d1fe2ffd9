package server

import (
	"fmt"
	"log"

	"anime-reel-be/internal/bootstrap"
	"anime-reel-be/internal/config"
	"anime-reel-be/internal/dto"
	"anime-reel-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())

	// Routes
	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	// Every request short-circuits while serving assets are missing; no
	// handler may run a partial computation against an empty store.
	api.Use(func(ctx *fiber.Ctx) error {
		if !c.Ready {
			return fiber.NewError(fiber.StatusServiceUnavailable, "Recommendation assets are not loaded")
		}
		return ctx.Next()
	})

	api.Get("/status", func(ctx *fiber.Ctx) error {
		res := dto.StatusResponse{
			Status:  "ok",
			Message: fmt.Sprintf("Serving %d titles", c.Store.Len()),
		}
		return ctx.JSON(serverutils.SuccessResponse("Service is healthy", res))
	})

	c.ReelController.RegisterRoutes(api)
	c.FeedbackController.RegisterRoutes(api)
	c.CatalogController.RegisterRoutes(api)
	c.UserController.RegisterRoutes(api)
}
