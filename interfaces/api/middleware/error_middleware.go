package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"task-tracker/pkg/logger"
	"task-tracker/pkg/utils"
)

// ErrorHandler renders errors that escape the handlers, including fiber's own
// 404 and 405, in the same {message} shape the handlers use.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}

		if code >= fiber.StatusInternalServerError {
			logger.ErrorContext(c.UserContext(), "Unhandled error", "path", c.Path(), "error", err)
		} else {
			logger.WarnContext(c.UserContext(), "Request error", "path", c.Path(), "status", code, "error", err)
		}

		return utils.ErrorResponse(c, code, message, nil)
	}
}
