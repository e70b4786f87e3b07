package main

import (
	"context"
	"fmt"
	"os"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"task-tracker/interfaces/api/handlers"
	"task-tracker/interfaces/api/middleware"
	"task-tracker/interfaces/api/routes"
	"task-tracker/pkg/di"
	"task-tracker/pkg/logger"
)

func main() {
	container := di.NewContainer()

	if err := container.Initialize(); err != nil {
		// the logger may not be configured yet
		fmt.Fprintln(os.Stderr, "Failed to initialize container:", err)
		_ = container.Cleanup()
		os.Exit(1)
	}

	cfg := container.GetConfig()

	app := fiber.New(fiber.Config{
		ErrorHandler:          middleware.ErrorHandler(),
		AppName:               cfg.App.Name,
		DisableStartupMessage: cfg.IsProduction(),
	})

	// request id must come before the logger
	app.Use(recover.New())
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.CorsMiddleware(cfg.CORS.ClientURL))

	h := handlers.NewHandlers(container.GetHandlerServices())
	routes.SetupRoutes(app, h)

	port := cfg.App.Port
	logger.Info("Server starting",
		"port", port,
		"env", cfg.App.Env,
		"app", cfg.App.Name,
	)

	go func() {
		if err := app.Listen(":" + port); err != nil {
			logger.Error("Server failed to start", "error", err)
			_ = container.Cleanup()
			os.Exit(1)
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.App.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				logger.Info("Gracefully shutting down...")
				if err := app.ShutdownWithContext(ctx); err != nil {
					logger.Error("HTTP server shutdown failed", "error", err)
				}
				return container.Cleanup()
			},
		},
	)

	exitCode := <-wait
	logger.Info("Shutdown complete", "exit_code", exitCode)
	os.Exit(exitCode)
}
