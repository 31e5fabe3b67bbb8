package assignments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sskrishnan03/krishnan-study-planner/app/data"
)

// SetupAssignmentsRoutes registers the assignment routes.
func SetupAssignmentsRoutes(app *fiber.App, repo *data.Repository) {
	api := app.Group("/api/assignments")

	api.Get("/", ListAssignmentsHandler(repo))
	api.Post("/", CreateAssignmentHandler(repo))
	api.Put("/:id", UpdateAssignmentHandler(repo))
	api.Put("/:id/status", SetStatusHandler(repo))
	api.Delete("/:id", DeleteAssignmentHandler(repo))
}
