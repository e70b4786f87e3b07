package utils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name           string
		handler        fiber.Handler
		expectedStatus int
		expectedBody   map[string]any
	}{
		{
			name:           "bad request",
			handler:        func(c *fiber.Ctx) error { return BadRequestResponse(c, MsgTaskNotFound) },
			expectedStatus: fiber.StatusBadRequest,
			expectedBody:   map[string]any{"message": "Task not found"},
		},
		{
			name:           "internal error exposes message",
			handler:        func(c *fiber.Ctx) error { return InternalServerErrorResponse(c, "connection refused") },
			expectedStatus: fiber.StatusInternalServerError,
			expectedBody:   map[string]any{"message": "connection refused"},
		},
		{
			name:           "internal error default message",
			handler:        func(c *fiber.Ctx) error { return InternalServerErrorResponse(c, "") },
			expectedStatus: fiber.StatusInternalServerError,
			expectedBody:   map[string]any{"message": "Internal server error"},
		},
		{
			name: "validation carries details",
			handler: func(c *fiber.Ctx) error {
				return ValidationErrorResponse(c, map[string]string{"status": "invalid"})
			},
			expectedStatus: fiber.StatusBadRequest,
			expectedBody: map[string]any{
				"message": "Validation failed",
				"errors":  map[string]any{"status": "invalid"},
			},
		},
		{
			name:           "message",
			handler:        func(c *fiber.Ctx) error { return MessageResponse(c, fiber.StatusOK, MsgTaskDeleted) },
			expectedStatus: fiber.StatusOK,
			expectedBody:   map[string]any{"message": "Task deleted"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", tt.handler)

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.expectedBody, body)
		})
	}
}
