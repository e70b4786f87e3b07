package handlers

import (
	"task-tracker/domain/ports"
	"task-tracker/domain/services"
	"task-tracker/pkg/scheduler"
)

// Services contains all the services needed for handlers
type Services struct {
	TaskService        services.TaskService
	TaskQueryService   services.TaskQueryService
	StoreHealthService services.StoreHealthService
	Scheduler          scheduler.EventScheduler
	Dependencies       []ports.DependencyChecker // Redis and NATS, when connected
	RateLimiter        ports.RateLimiterPort     // nil when Redis is not configured
	AppName            string
}

// Handlers contains all HTTP handlers
type Handlers struct {
	TaskHandler   *TaskHandler
	HealthHandler *HealthHandler
	RateLimiter   ports.RateLimiterPort
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		TaskHandler:   NewTaskHandler(services.TaskService, services.TaskQueryService),
		HealthHandler: NewHealthHandler(services.StoreHealthService, services.Scheduler, services.Dependencies, services.AppName),
		RateLimiter:   services.RateLimiter,
	}
}
