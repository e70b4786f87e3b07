package dto

import (
	"task-tracker/domain/models"
)

// DueDate accepts RFC3339 timestamps, plain dates (2006-01-02) or epoch milliseconds.
type CreateTaskRequest struct {
	Title       string       `json:"title" form:"title"`
	Description string       `json:"description" form:"description"`
	DueDate     DueDateInput `json:"dueDate" form:"dueDate" validate:"omitempty,duedate"`
	Status      string       `json:"status" form:"status" validate:"omitempty,oneof=pending 'in progress' completed"`
}

type UpdateTaskRequest struct {
	Title       string       `json:"title" form:"title"`
	Description string       `json:"description" form:"description"`
	DueDate     DueDateInput `json:"dueDate" form:"dueDate" validate:"omitempty,duedate"`
	Status      string       `json:"status" form:"status" validate:"omitempty,oneof=pending 'in progress' completed"`
}

type TaskListResponse struct {
	Length int            `json:"length"`
	Tasks  []*models.Task `json:"tasks"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
