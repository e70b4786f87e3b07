package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"task-tracker/domain/models"
	"task-tracker/domain/ports"
	"task-tracker/pkg/logger"
)

// Publisher sends task lifecycle events to JetStream
type Publisher struct {
	client *Client
}

func NewPublisher(client *Client) *Publisher {
	return &Publisher{
		client: client,
	}
}

func (p *Publisher) PublishTaskEvent(ctx context.Context, event *models.TaskEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal task event: %w", err)
	}

	subject := Subject(p.client.SubjectPrefix(), string(event.Type))
	ack, err := p.client.JetStream().Publish(ctx, subject, data)
	if err != nil {
		return fmt.Errorf("failed to publish task event: %w", err)
	}

	logger.DebugContext(ctx, "Task event published",
		"subject", subject,
		"task_id", event.TaskID,
		"event_id", event.ID,
		"sequence", ack.Sequence,
	)
	return nil
}

func (p *Publisher) Close() error {
	return p.client.Close()
}

var _ ports.TaskEventPublisher = (*Publisher)(nil)
