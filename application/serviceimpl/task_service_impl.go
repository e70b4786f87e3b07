package serviceimpl

import (
	"context"
	"strings"

	"task-tracker/domain/dto"
	"task-tracker/domain/models"
	"task-tracker/domain/ports"
	"task-tracker/domain/repositories"
	"task-tracker/domain/services"
	"task-tracker/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo  repositories.TaskRepository
	publisher ports.TaskEventPublisher
}

func NewTaskService(taskRepo repositories.TaskRepository, publisher ports.TaskEventPublisher) services.TaskService {
	return &TaskServiceImpl{
		taskRepo:  taskRepo,
		publisher: publisher,
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, services.ErrTitleRequired
	}
	if req.Status != "" && !models.TaskStatus(req.Status).IsValid() {
		return nil, services.ErrInvalidStatus
	}

	task := dto.CreateTaskRequestToTask(req)

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "title", task.Title, "error", err)
		return nil, services.NewInfrastructureError("create", err)
	}

	logger.InfoContext(ctx, "Task created successfully", "task_id", task.ID.Hex())
	s.publish(ctx, models.NewTaskEvent(models.TaskEventCreated, task.ID.Hex(), task))

	return task, nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, taskID string) (*models.Task, error) {
	if taskID == "" {
		return nil, services.ErrMissingTaskID
	}
	return s.findExisting(ctx, "get", taskID)
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, taskID string, req *dto.UpdateTaskRequest) (*models.Task, error) {
	if taskID == "" {
		return nil, services.ErrMissingTaskID
	}
	if req.Status != "" && !models.TaskStatus(req.Status).IsValid() {
		return nil, services.ErrInvalidStatus
	}

	task, err := s.findExisting(ctx, "update", taskID)
	if err != nil {
		return nil, err
	}

	dto.ApplyUpdateTaskRequest(task, req)

	updated, err := s.taskRepo.FindByIDAndUpdate(ctx, taskID, task)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", taskID, "error", err)
		return nil, services.NewInfrastructureError("update", err)
	}
	if updated == nil {
		// removed between the lookup and the write
		logger.WarnContext(ctx, "Task vanished during update", "task_id", taskID)
		return nil, services.ErrTaskNotFound
	}

	logger.InfoContext(ctx, "Task updated successfully", "task_id", taskID)
	s.publish(ctx, models.NewTaskEvent(models.TaskEventUpdated, taskID, updated))

	return updated, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, taskID string) error {
	if taskID == "" {
		return services.ErrMissingTaskID
	}

	if _, err := s.findExisting(ctx, "delete", taskID); err != nil {
		return err
	}

	if _, err := s.taskRepo.FindByIDAndDelete(ctx, taskID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "error", err)
		return services.NewInfrastructureError("delete", err)
	}

	logger.InfoContext(ctx, "Task deleted successfully", "task_id", taskID)
	s.publish(ctx, models.NewTaskEvent(models.TaskEventDeleted, taskID, nil))

	return nil
}

func (s *TaskServiceImpl) findExisting(ctx context.Context, op, taskID string) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load task", "op", op, "task_id", taskID, "error", err)
		return nil, services.NewInfrastructureError(op, err)
	}
	if task == nil {
		logger.WarnContext(ctx, "Task not found", "op", op, "task_id", taskID)
		return nil, services.ErrTaskNotFound
	}
	return task, nil
}

// publish never fails the request; the write has already been committed.
func (s *TaskServiceImpl) publish(ctx context.Context, event *models.TaskEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishTaskEvent(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish task event",
			"type", event.Type,
			"task_id", event.TaskID,
			"error", err,
		)
	}
}
