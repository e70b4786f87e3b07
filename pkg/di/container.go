package di

import (
	"context"
	"time"

	"task-tracker/application/serviceimpl"
	"task-tracker/domain/ports"
	"task-tracker/domain/repositories"
	"task-tracker/domain/services"
	"task-tracker/infrastructure/messaging"
	"task-tracker/infrastructure/mongodb"
	natspkg "task-tracker/infrastructure/nats"
	redispkg "task-tracker/infrastructure/redis"
	"task-tracker/interfaces/api/handlers"
	"task-tracker/pkg/config"
	"task-tracker/pkg/logger"
	"task-tracker/pkg/scheduler"
)

const indexTimeout = 10 * time.Second

type Container struct {
	Config *config.Config

	// Infrastructure
	Database       *mongodb.Database
	RedisClient    *redispkg.Client // optional, backs the rate limiter
	NATSClient     *natspkg.Client  // optional, backs task events
	EventScheduler scheduler.EventScheduler

	// Ports
	EventPublisher ports.TaskEventPublisher
	RateLimiter    ports.RateLimiterPort

	// Repositories
	TaskRepository repositories.TaskRepository

	// Services
	TaskService        services.TaskService
	TaskQueryService   services.TaskQueryService
	StoreHealthService services.StoreHealthService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	if err := c.initScheduler(); err != nil {
		return err
	}

	logger.Info("Container initialized")
	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
		AddSource:  c.Config.Log.AddSource,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	// The document store is required, everything else degrades gracefully
	db, err := mongodb.NewDatabase(mongodb.DatabaseConfig{
		URI:            c.Config.Mongo.URI,
		Database:       c.Config.Mongo.Database,
		ConnectTimeout: c.Config.Mongo.ConnectTimeout,
	})
	if err != nil {
		return err
	}
	c.Database = db

	ctx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	defer cancel()
	if err := db.EnsureIndexes(ctx, c.Config.Mongo.Collection); err != nil {
		logger.Warn("Failed to ensure indexes", "error", err)
	}

	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis client initialization failed (rate limiting disabled)", "error", err)
		} else {
			c.RedisClient = redisClient
			c.RateLimiter = redispkg.NewSlidingWindowLimiter(redisClient, redispkg.RateLimiterConfig{
				Requests: c.Config.RateLimit.Requests,
				Window:   c.Config.RateLimit.Window,
			})
			logger.Info("Rate limiter enabled",
				"requests", c.Config.RateLimit.Requests,
				"window", c.Config.RateLimit.Window.String(),
			)
		}
	} else {
		logger.Info("Rate limiting disabled (REDIS_URL not set)")
	}

	if c.Config.NATS.URL != "" {
		natsClient, err := natspkg.NewClient(natspkg.ClientConfig{
			URL:           c.Config.NATS.URL,
			SubjectPrefix: c.Config.NATS.SubjectPrefix,
		})
		if err != nil {
			logger.Warn("NATS client initialization failed (task events disabled)", "error", err)
		} else {
			c.NATSClient = natsClient
			c.EventPublisher = natspkg.NewPublisher(natsClient)
		}
	}
	if c.EventPublisher == nil {
		c.EventPublisher = messaging.NewNoopPublisher()
	}

	return nil
}

func (c *Container) initRepositories() error {
	c.TaskRepository = mongodb.NewTaskRepository(c.Database, c.Config.Mongo.Collection)
	logger.Info("Repositories initialized", "collection", c.Config.Mongo.Collection)
	return nil
}

func (c *Container) initServices() error {
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.EventPublisher)
	c.TaskQueryService = serviceimpl.NewTaskQueryService(c.TaskRepository)
	logger.Info("Services initialized")
	return nil
}

func (c *Container) initScheduler() error {
	c.EventScheduler = scheduler.NewEventScheduler()

	c.StoreHealthService = serviceimpl.NewStoreHealthService(
		serviceimpl.StoreHealthConfig{CheckInterval: c.Config.Health.CheckInterval},
		c.TaskRepository,
		c.EventScheduler,
	)
	if err := c.StoreHealthService.RegisterHealthJob(); err != nil {
		return err
	}

	c.EventScheduler.Start()

	// first snapshot so /health does not report unknown until the first tick
	c.StoreHealthService.RunCheck(context.Background())
	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	if c.EventScheduler != nil && c.EventScheduler.IsRunning() {
		c.EventScheduler.Stop()
	}

	if c.EventPublisher != nil {
		if err := c.EventPublisher.Close(); err != nil {
			logger.Warn("Failed to close event publisher", "error", err)
		}
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	if c.Database != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.Database.Close(ctx); err != nil {
			logger.Warn("Failed to close MongoDB connection", "error", err)
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) dependencyCheckers() []ports.DependencyChecker {
	var checkers []ports.DependencyChecker
	if c.RedisClient != nil {
		checkers = append(checkers, c.RedisClient)
	}
	if c.NATSClient != nil {
		checkers = append(checkers, c.NATSClient)
	}
	return checkers
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		TaskService:        c.TaskService,
		TaskQueryService:   c.TaskQueryService,
		StoreHealthService: c.StoreHealthService,
		Scheduler:          c.EventScheduler,
		Dependencies:       c.dependencyCheckers(),
		RateLimiter:        c.RateLimiter,
		AppName:            c.Config.App.Name,
	}
}
