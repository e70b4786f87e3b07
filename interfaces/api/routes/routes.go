package routes

import (
	"github.com/gofiber/fiber/v2"

	"task-tracker/interfaces/api/handlers"
	"task-tracker/interfaces/api/middleware"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers) {
	SetupHealthRoutes(app, h)

	api := app.Group("/api/v1")
	if h.RateLimiter != nil {
		api.Use(middleware.RateLimitMiddleware(h.RateLimiter))
	}

	SetupTaskRoutes(api, h)
}
