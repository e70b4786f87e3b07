package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"task-tracker/domain/models"
	"task-tracker/domain/ports"
	"task-tracker/domain/services"
	"task-tracker/pkg/logger"
	"task-tracker/pkg/scheduler"
)

const dependencyCheckTimeout = 2 * time.Second

type HealthHandler struct {
	storeHealth  services.StoreHealthService
	scheduler    scheduler.EventScheduler
	dependencies []ports.DependencyChecker
	appName      string
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func NewHealthHandler(
	storeHealth services.StoreHealthService,
	eventScheduler scheduler.EventScheduler,
	dependencies []ports.DependencyChecker,
	appName string,
) *HealthHandler {
	return &HealthHandler{
		storeHealth:  storeHealth,
		scheduler:    eventScheduler,
		dependencies: dependencies,
		appName:      appName,
	}
}

// Health reports the latest store check, the optional backing services and the
// scheduled jobs. Only a failed store check answers 503; a failing optional
// service marks the report degraded.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx := c.UserContext()
	store := h.storeHealth.Current()

	status := fiber.StatusOK
	overall := "ok"

	deps := make(map[string]dependencyStatus, len(h.dependencies))
	for _, dep := range h.dependencies {
		if err := checkDependency(ctx, dep); err != nil {
			logger.WarnContext(ctx, "Dependency check failed", "dependency", dep.Name(), "error", err)
			deps[dep.Name()] = dependencyStatus{Status: "down", Error: err.Error()}
			overall = "degraded"
			continue
		}
		deps[dep.Name()] = dependencyStatus{Status: "up"}
	}

	if store.Status == models.StoreHealthUnhealthy {
		status = fiber.StatusServiceUnavailable
		overall = "degraded"
	}

	body := fiber.Map{
		"status":       overall,
		"service":      h.appName,
		"store":        store,
		"dependencies": deps,
	}
	if h.scheduler != nil {
		body["jobs"] = h.scheduler.ListJobs()
	}

	return c.Status(status).JSON(body)
}

func checkDependency(ctx context.Context, dep ports.DependencyChecker) error {
	ctx, cancel := context.WithTimeout(ctx, dependencyCheckTimeout)
	defer cancel()
	return dep.Check(ctx)
}

func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Welcome to " + h.appName,
		"version": "1.0.0",
		"docs":    "/api/v1",
		"health":  "/health",
	})
}
