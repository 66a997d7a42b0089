package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aeroclub-norte/turnero-api/internal/config"
	"github.com/aeroclub-norte/turnero-api/internal/handler"
	"github.com/aeroclub-norte/turnero-api/internal/middleware"
	"github.com/aeroclub-norte/turnero-api/internal/models"
	"github.com/aeroclub-norte/turnero-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler       *handler.AuthHandler
	CohortHandler     *handler.CohortHandler
	StudentHandler    *handler.StudentHandler
	SlotHandler       *handler.SlotHandler
	SessionMiddleware fiber.Handler
}

// Register wires the HTTP routes into the fiber application. Everything
// under /admin requires an admin session, everything under /student a
// student one; the two surfaces never overlap.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	app.Get("/metrics", observability.MetricsHandler())

	session := deps.SessionMiddleware
	if session == nil {
		session = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.AuthHandler != nil {
		deps.AuthHandler.RegisterPublic(api.Group("/auth"))
		deps.AuthHandler.RegisterProtected(api.Group("/auth", session))
	}

	admin := api.Group("/admin", session, middleware.RequireRole(models.RoleAdmin))
	if deps.CohortHandler != nil {
		deps.CohortHandler.Register(admin.Group("/cohorts"))
	}
	if deps.StudentHandler != nil {
		deps.StudentHandler.Register(admin.Group("/students"))
	}
	if deps.SlotHandler != nil {
		deps.SlotHandler.RegisterAdmin(admin.Group("/slots"))

		student := api.Group("/student", session, middleware.RequireRole(models.RoleStudent))
		deps.SlotHandler.RegisterStudent(student.Group("/slots"))
	}
}
