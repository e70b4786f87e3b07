package serviceimpl

import (
	"context"

	"task-tracker/domain/models"
	"task-tracker/domain/repositories"
	"task-tracker/domain/services"
	"task-tracker/pkg/logger"
)

const dueDateField = "dueDate"

type TaskQueryServiceImpl struct {
	taskRepo repositories.TaskRepository
}

func NewTaskQueryService(taskRepo repositories.TaskRepository) services.TaskQueryService {
	return &TaskQueryServiceImpl{
		taskRepo: taskRepo,
	}
}

func (s *TaskQueryServiceImpl) ListTasks(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.taskRepo.Find(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return nil, services.NewInfrastructureError("list", err)
	}
	return tasks, nil
}

// ListTasksOrdered never rejects a directive: anything other than ASC, DESC or
// STATUS yields the plain listing.
func (s *TaskQueryServiceImpl) ListTasksOrdered(ctx context.Context, order string) ([]*models.Task, error) {
	var (
		tasks []*models.Task
		err   error
	)

	switch order {
	case services.OrderAscending:
		tasks, err = s.taskRepo.FindSorted(ctx, dueDateField, repositories.SortAscending)
	case services.OrderDescending:
		tasks, err = s.taskRepo.FindSorted(ctx, dueDateField, repositories.SortDescending)
	case services.OrderStatus:
		tasks, err = s.taskRepo.AggregateByStatusRank(ctx)
	default:
		logger.DebugContext(ctx, "Unrecognized order directive, returning unordered list", "order", order)
		tasks, err = s.taskRepo.Find(ctx)
	}

	if err != nil {
		logger.ErrorContext(ctx, "Failed to list ordered tasks", "order", order, "error", err)
		return nil, services.NewInfrastructureError("list_ordered", err)
	}
	return tasks, nil
}
