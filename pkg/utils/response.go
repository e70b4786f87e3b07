package utils

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the JSON shape of every non-2xx answer.
type ErrorBody struct {
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
}

const (
	MsgTitleRequired   = "Title is required!"
	MsgProvideTaskID   = "Provide task id"
	MsgTaskNotFound    = "Task not found"
	MsgTaskDeleted     = "Task deleted"
	MsgInvalidBody     = "Invalid request body"
	MsgValidation      = "Validation failed"
	MsgTooManyRequests = "Too many requests"
)

// ========== Success Responses ==========

func SuccessResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

func CreatedResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func MessageResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{"message": message})
}

// ========== Error Responses ==========

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, details any) error {
	return c.Status(statusCode).JSON(ErrorBody{
		Message: message,
		Errors:  details,
	})
}

func BadRequestResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusBadRequest, message, nil)
}

func ValidationErrorResponse(c *fiber.Ctx, details any) error {
	return ErrorResponse(c, fiber.StatusBadRequest, MsgValidation, details)
}

func TooManyRequestsResponse(c *fiber.Ctx) error {
	return ErrorResponse(c, fiber.StatusTooManyRequests, MsgTooManyRequests, nil)
}

// InternalServerErrorResponse exposes the underlying error text to the caller.
func InternalServerErrorResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Internal server error"
	}
	return ErrorResponse(c, fiber.StatusInternalServerError, message, nil)
}
