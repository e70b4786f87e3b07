package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker/domain/models"
	"task-tracker/domain/ports"
	"task-tracker/interfaces/api/handlers"
	"task-tracker/interfaces/api/middleware"
	"task-tracker/interfaces/api/routes"
	"task-tracker/pkg/scheduler"
)

type stubDependency struct {
	name string
	err  error
}

func (d *stubDependency) Name() string { return d.name }
func (d *stubDependency) Check(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("check called without a deadline")
	}
	return d.err
}

type stubScheduler struct {
	jobs map[string]*scheduler.JobInfo
}

func (s *stubScheduler) Start()                                        {}
func (s *stubScheduler) Stop()                                         {}
func (s *stubScheduler) IsRunning() bool                               { return true }
func (s *stubScheduler) AddJob(id, cronExpr string, task func()) error { return nil }
func (s *stubScheduler) ListJobs() map[string]*scheduler.JobInfo       { return s.jobs }

func setupHealthApp(store models.StoreHealthStatus, sched scheduler.EventScheduler, deps ...ports.DependencyChecker) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	routes.SetupRoutes(app, handlers.NewHandlers(&handlers.Services{
		TaskService:        &mockTaskService{},
		TaskQueryService:   &mockTaskQueryService{},
		StoreHealthService: &stubStoreHealth{current: models.StoreHealth{Status: store}},
		Scheduler:          sched,
		Dependencies:       deps,
		AppName:            "Task Tracker API",
	}))
	return app
}

func TestHealth_DependenciesUp(t *testing.T) {
	app := setupHealthApp(models.StoreHealthHealthy, nil,
		&stubDependency{name: "redis"},
		&stubDependency{name: "nats"},
	)

	resp, body := doJSON(t, app, http.MethodGet, "/health", nil)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	deps, ok := body["dependencies"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"status": "up"}, deps["redis"])
	assert.Equal(t, map[string]any{"status": "up"}, deps["nats"])
	assert.NotContains(t, body, "jobs")
}

func TestHealth_OptionalDependencyDownIsDegradedNotUnavailable(t *testing.T) {
	app := setupHealthApp(models.StoreHealthHealthy, nil,
		&stubDependency{name: "redis"},
		&stubDependency{name: "nats", err: errors.New("nats: not connected")},
	)

	resp, body := doJSON(t, app, http.MethodGet, "/health", nil)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "degraded", body["status"])
	deps := body["dependencies"].(map[string]any)
	assert.Equal(t, map[string]any{"status": "down", "error": "nats: not connected"}, deps["nats"])
}

func TestHealth_StoreDownWithDependencies(t *testing.T) {
	app := setupHealthApp(models.StoreHealthUnhealthy, nil, &stubDependency{name: "redis"})

	resp, body := doJSON(t, app, http.MethodGet, "/health", nil)

	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "degraded", body["status"])
}

func TestHealth_ListsScheduledJobs(t *testing.T) {
	sched := &stubScheduler{jobs: map[string]*scheduler.JobInfo{
		"store_health_check": {ID: "store_health_check", CronExpr: "@every 30s"},
	}}
	app := setupHealthApp(models.StoreHealthHealthy, sched)

	resp, body := doJSON(t, app, http.MethodGet, "/health", nil)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	jobs, ok := body["jobs"].(map[string]any)
	require.True(t, ok)
	job := jobs["store_health_check"].(map[string]any)
	assert.Equal(t, "@every 30s", job["cronExpr"])
}
