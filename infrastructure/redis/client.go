package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"task-tracker/domain/ports"
	"task-tracker/pkg/config"
	"task-tracker/pkg/logger"
)

// Client wraps the Redis client
type Client struct {
	rdb *redis.Client
}

// NewClient creates a new Redis client from config
func NewClient(cfg *config.RedisConfig) (*Client, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	if cfg.Password != "" {
		opt.Password = cfg.Password
	}
	if cfg.DB > 0 {
		opt.DB = cfg.DB
	}

	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	logger.Info("Redis connected", "addr", opt.Addr, "db", opt.DB)

	return &Client{rdb: rdb}, nil
}

// Redis exposes the underlying client for scripts
func (c *Client) Redis() *redis.Client {
	return c.rdb
}

func (c *Client) Name() string {
	return "redis"
}

func (c *Client) Check(ctx context.Context) error {
	return c.Ping(ctx)
}

func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

var _ ports.DependencyChecker = (*Client)(nil)
