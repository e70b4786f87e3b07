package routes

import (
	"github.com/gofiber/fiber/v2"

	"task-tracker/interfaces/api/handlers"
)

// The id is optional on /task so that a request without one reaches the
// handler and is answered with "Provide task id".
func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers) {
	api.Post("/task/create", h.TaskHandler.CreateTask)
	api.Get("/tasks", h.TaskHandler.ListTasks)
	api.Get("/tasks/ordered/:order", h.TaskHandler.ListTasksOrdered)

	api.Get("/task/:id?", h.TaskHandler.GetTask)
	api.Patch("/task/:id?", h.TaskHandler.UpdateTask)
	api.Delete("/task/:id?", h.TaskHandler.DeleteTask)
}
