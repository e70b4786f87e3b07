package ports

import (
	"context"

	"task-tracker/domain/models"
)

// TaskEventPublisher broadcasts task lifecycle events to other services.
type TaskEventPublisher interface {
	PublishTaskEvent(ctx context.Context, event *models.TaskEvent) error
	Close() error
}
