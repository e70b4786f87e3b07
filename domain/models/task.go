package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Rank used by the STATUS ordering. Unknown statuses sort last.
func (s TaskStatus) Rank() int {
	switch s {
	case TaskStatusCompleted:
		return 1
	case TaskStatusInProgress:
		return 2
	case TaskStatusPending:
		return 3
	default:
		return 4
	}
}

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	DueDate     time.Time          `bson:"dueDate" json:"dueDate"`
	Status      TaskStatus         `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (Task) CollectionName() string {
	return "tasks"
}

// PrepareForInsert fills the defaults the store owns: status, due date and timestamps.
func (t *Task) PrepareForInsert(now time.Time) {
	if t.Status == "" {
		t.Status = TaskStatusPending
	}
	if t.DueDate.IsZero() {
		t.DueDate = now
	}
	t.CreatedAt = now
	t.UpdatedAt = now
}

func (t *Task) PrepareForUpdate(now time.Time) {
	t.UpdatedAt = now
}
