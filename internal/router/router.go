package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karabo-m/luct-reporting-api/internal/config"
	"github.com/karabo-m/luct-reporting-api/internal/handler"
	"github.com/karabo-m/luct-reporting-api/internal/middleware"
	"github.com/karabo-m/luct-reporting-api/internal/models"
	"github.com/karabo-m/luct-reporting-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	AssignmentHandler *handler.AssignmentHandler
	ReportHandler     *handler.ReportHandler
	RatingHandler     *handler.RatingHandler
	StatsHandler      *handler.StatsHandler
	ExportHandler     *handler.ExportHandler
	JWTMiddleware     fiber.Handler
	ActorMiddleware   fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	app.Get("/metrics", observability.MetricsHandler())

	// Use the provided session middlewares, or no-ops if nil
	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}
	actorMiddleware := deps.ActorMiddleware
	if actorMiddleware == nil {
		actorMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.AuthHandler != nil {
		auth := api.Group("/auth", middleware.RateLimit("auth", cfg.RateLimitMax, cfg.RateLimitWindow))
		deps.AuthHandler.Register(auth)

		session := auth.Group("", jwtMiddleware)
		deps.AuthHandler.RegisterProtected(session)
	}

	protected := api.Group("", jwtMiddleware, actorMiddleware)

	if deps.UserHandler != nil {
		users := protected.Group("/users", middleware.RequireRole(models.RoleAdmin))
		deps.UserHandler.Register(users)
	}

	if deps.AssignmentHandler != nil {
		assignments := protected.Group("/assignments")
		deps.AssignmentHandler.Register(assignments)
	}

	if deps.ReportHandler != nil {
		reports := protected.Group("/reports")
		deps.ReportHandler.Register(reports)

		if deps.RatingHandler != nil {
			deps.RatingHandler.Register(reports)
		}
	}

	if deps.StatsHandler != nil {
		stats := protected.Group("/stats")
		deps.StatsHandler.Register(stats)
	}

	if deps.ExportHandler != nil {
		export := protected.Group("/export")
		deps.ExportHandler.Register(export)
	}
}
