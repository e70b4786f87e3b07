package messaging

import (
	"context"
	"log/slog"

	"task-tracker/domain/models"
	"task-tracker/domain/ports"
	"task-tracker/pkg/logger"
)

// NoopPublisher drops task events. Used when NATS_URL is unset.
type NoopPublisher struct {
	logger *slog.Logger
}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{
		logger: logger.Component("noop_publisher"),
	}
}

func (p *NoopPublisher) PublishTaskEvent(ctx context.Context, event *models.TaskEvent) error {
	p.logger.DebugContext(ctx, "Task event (noop)",
		"type", event.Type,
		"task_id", event.TaskID,
	)
	return nil
}

func (p *NoopPublisher) Close() error {
	return nil
}

var _ ports.TaskEventPublisher = (*NoopPublisher)(nil)
