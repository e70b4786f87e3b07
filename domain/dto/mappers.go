package dto

import (
	"strings"

	"task-tracker/domain/models"
	"task-tracker/pkg/utils"
)

func CreateTaskRequestToTask(req *CreateTaskRequest) *models.Task {
	task := &models.Task{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Status:      models.TaskStatus(req.Status),
	}
	if dueDate, ok := utils.ParseDueDate(req.DueDate.String()); ok {
		task.DueDate = dueDate
	}
	return task
}

// ApplyUpdateTaskRequest copies every truthy field of req onto task.
// Empty strings leave the current value untouched, so fields cannot be cleared.
func ApplyUpdateTaskRequest(task *models.Task, req *UpdateTaskRequest) {
	if title := strings.TrimSpace(req.Title); title != "" {
		task.Title = title
	}
	if req.Description != "" {
		task.Description = req.Description
	}
	if dueDate, ok := utils.ParseDueDate(req.DueDate.String()); ok {
		task.DueDate = dueDate
	}
	if req.Status != "" {
		task.Status = models.TaskStatus(req.Status)
	}
}

func TasksToTaskListResponse(tasks []*models.Task) *TaskListResponse {
	if tasks == nil {
		tasks = []*models.Task{}
	}
	return &TaskListResponse{
		Length: len(tasks),
		Tasks:  tasks,
	}
}
