package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"task-tracker/domain/dto"
	"task-tracker/domain/services"
	"task-tracker/pkg/logger"
	"task-tracker/pkg/utils"
)

type TaskHandler struct {
	taskService      services.TaskService
	taskQueryService services.TaskQueryService
}

func NewTaskHandler(taskService services.TaskService, taskQueryService services.TaskQueryService) *TaskHandler {
	return &TaskHandler{
		taskService:      taskService,
		taskQueryService: taskQueryService,
	}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, utils.MsgInvalidBody)
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errs)
		return utils.ValidationErrorResponse(c, errs)
	}

	task, err := h.taskService.CreateTask(ctx, &req)
	if err != nil {
		logger.WarnContext(ctx, "Task creation failed", "error", err)
		return h.errorResponse(c, err)
	}

	return utils.CreatedResponse(c, task)
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	tasks, err := h.taskQueryService.ListTasks(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.TasksToTaskListResponse(tasks))
}

func (h *TaskHandler) ListTasksOrdered(c *fiber.Ctx) error {
	ctx := c.UserContext()
	order := c.Params("order")

	tasks, err := h.taskQueryService.ListTasksOrdered(ctx, order)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list ordered tasks", "order", order, "error", err)
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.TasksToTaskListResponse(tasks))
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ctx := c.UserContext()
	taskID := c.Params("id")

	task, err := h.taskService.GetTask(ctx, taskID)
	if err != nil {
		logger.WarnContext(ctx, "Task lookup failed", "task_id", taskID, "error", err)
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, task)
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()
	taskID := c.Params("id")

	// a missing id wins over a malformed body
	if taskID == "" {
		logger.WarnContext(ctx, "Task update without id")
		return h.errorResponse(c, services.ErrMissingTaskID)
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, utils.MsgInvalidBody)
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errs)
		return utils.ValidationErrorResponse(c, errs)
	}

	task, err := h.taskService.UpdateTask(ctx, taskID, &req)
	if err != nil {
		logger.WarnContext(ctx, "Task update failed", "task_id", taskID, "error", err)
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, task)
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()
	taskID := c.Params("id")

	if err := h.taskService.DeleteTask(ctx, taskID); err != nil {
		logger.WarnContext(ctx, "Task deletion failed", "task_id", taskID, "error", err)
		return h.errorResponse(c, err)
	}

	return utils.MessageResponse(c, fiber.StatusOK, utils.MsgTaskDeleted)
}

// errorResponse maps service errors onto the API's status codes. A missing
// task is a 400, not a 404.
func (h *TaskHandler) errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrTitleRequired):
		return utils.BadRequestResponse(c, utils.MsgTitleRequired)
	case errors.Is(err, services.ErrMissingTaskID):
		return utils.BadRequestResponse(c, utils.MsgProvideTaskID)
	case errors.Is(err, services.ErrTaskNotFound):
		return utils.BadRequestResponse(c, utils.MsgTaskNotFound)
	case errors.Is(err, services.ErrInvalidStatus):
		return utils.ValidationErrorResponse(c, map[string]string{"status": err.Error()})
	default:
		return utils.InternalServerErrorResponse(c, err.Error())
	}
}
