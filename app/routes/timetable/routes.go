package timetable

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sskrishnan03/krishnan-study-planner/app/data"
)

// SetupTimetableRoutes registers the weekly timetable routes.
func SetupTimetableRoutes(app *fiber.App, repo *data.Repository) {
	api := app.Group("/api/timetable")

	api.Get("/", GetTimetableHandler(repo))
	api.Post("/", CreateTaskHandler(repo))
	api.Put("/:id", UpdateTaskHandler(repo))
	api.Delete("/:id", DeleteTaskHandler(repo))
}
