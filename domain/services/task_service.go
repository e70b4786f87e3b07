package services

import (
	"context"

	"task-tracker/domain/dto"
	"task-tracker/domain/models"
)

type TaskService interface {
	CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error)
	GetTask(ctx context.Context, taskID string) (*models.Task, error)
	UpdateTask(ctx context.Context, taskID string, req *dto.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID string) error
}

// Ordering directives accepted by TaskQueryService.ListTasksOrdered.
const (
	OrderAscending  = "ASC"
	OrderDescending = "DESC"
	OrderStatus     = "STATUS"
)

type TaskQueryService interface {
	ListTasks(ctx context.Context) ([]*models.Task, error)
	// ListTasksOrdered falls back to the unordered listing for unknown directives.
	ListTasksOrdered(ctx context.Context, order string) ([]*models.Task, error)
}
