package models

import (
	"time"

	"github.com/google/uuid"
)

type TaskEventType string

const (
	TaskEventCreated TaskEventType = "created"
	TaskEventUpdated TaskEventType = "updated"
	TaskEventDeleted TaskEventType = "deleted"
)

// TaskEvent is published after a task mutation has been persisted.
type TaskEvent struct {
	ID         uuid.UUID     `json:"id"`
	Type       TaskEventType `json:"type"`
	TaskID     string        `json:"taskId"`
	Task       *Task         `json:"task,omitempty"`
	OccurredAt time.Time     `json:"occurredAt"`
}

func NewTaskEvent(eventType TaskEventType, taskID string, task *Task) *TaskEvent {
	return &TaskEvent{
		ID:         uuid.New(),
		Type:       eventType,
		TaskID:     taskID,
		Task:       task,
		OccurredAt: time.Now().UTC(),
	}
}
