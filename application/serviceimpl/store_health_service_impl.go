package serviceimpl

import (
	"context"
	"fmt"
	"sync"
	"time"

	"task-tracker/domain/models"
	"task-tracker/domain/repositories"
	"task-tracker/domain/services"
	"task-tracker/pkg/logger"
	"task-tracker/pkg/scheduler"
)

const storeHealthJobID = "store_health_check"

type StoreHealthConfig struct {
	CheckInterval time.Duration
	PingTimeout   time.Duration
}

// StoreHealthServiceImpl pings the document store on a schedule and keeps the latest result.
type StoreHealthServiceImpl struct {
	config    StoreHealthConfig
	taskRepo  repositories.TaskRepository
	scheduler scheduler.EventScheduler

	mu      sync.RWMutex
	current models.StoreHealth
}

func NewStoreHealthService(
	config StoreHealthConfig,
	taskRepo repositories.TaskRepository,
	eventScheduler scheduler.EventScheduler,
) services.StoreHealthService {
	if config.CheckInterval <= 0 {
		config.CheckInterval = 30 * time.Second
	}
	if config.PingTimeout <= 0 {
		config.PingTimeout = 5 * time.Second
	}

	return &StoreHealthServiceImpl{
		config:    config,
		taskRepo:  taskRepo,
		scheduler: eventScheduler,
		current:   models.StoreHealth{Status: models.StoreHealthUnknown},
	}
}

func (s *StoreHealthServiceImpl) RegisterHealthJob() error {
	cronExpr := fmt.Sprintf("@every %s", s.config.CheckInterval)
	return s.scheduler.AddJob(storeHealthJobID, cronExpr, func() {
		s.RunCheck(context.Background())
	})
}

func (s *StoreHealthServiceImpl) RunCheck(ctx context.Context) models.StoreHealth {
	pingCtx, cancel := context.WithTimeout(ctx, s.config.PingTimeout)
	defer cancel()

	start := time.Now()
	err := s.taskRepo.Ping(pingCtx)
	checkedAt := time.Now()

	result := models.StoreHealth{
		Status:        models.StoreHealthHealthy,
		LastCheckedAt: &checkedAt,
		Latency:       checkedAt.Sub(start).String(),
	}
	if err != nil {
		result.Status = models.StoreHealthUnhealthy
		result.Error = err.Error()
	}

	s.mu.Lock()
	previous := s.current.Status
	s.current = result
	s.mu.Unlock()

	// only log transitions, a healthy store would otherwise flood the log
	if previous != result.Status {
		if err != nil {
			logger.ErrorContext(ctx, "Document store unhealthy", "error", err)
		} else {
			logger.InfoContext(ctx, "Document store healthy", "latency", result.Latency)
		}
	}

	return result
}

func (s *StoreHealthServiceImpl) Current() models.StoreHealth {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
