package subjects

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sskrishnan03/krishnan-study-planner/app/data"
)

// SetupSubjectsRoutes registers the subject and topic routes.
func SetupSubjectsRoutes(app *fiber.App, repo *data.Repository) {
	api := app.Group("/api/subjects")

	api.Get("/", ListSubjectsHandler(repo))
	api.Get("/:id", GetSubjectHandler(repo))
	api.Post("/", CreateSubjectHandler(repo))
	api.Put("/:id", UpdateSubjectHandler(repo))
	api.Delete("/:id", DeleteSubjectHandler(repo))

	api.Post("/:id/topics", CreateTopicHandler(repo))
	api.Put("/:id/topics/:topicId/toggle", ToggleTopicHandler(repo))
	api.Delete("/:id/topics/:topicId", DeleteTopicHandler(repo))
}
