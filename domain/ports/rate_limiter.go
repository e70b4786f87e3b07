package ports

import (
	"context"

	"task-tracker/domain/models"
)

type RateLimiterPort interface {
	Allow(ctx context.Context, key string) (*models.RateLimitResult, error)
}
