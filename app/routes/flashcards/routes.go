package flashcards

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sskrishnan03/krishnan-study-planner/app/data"
)

// SetupFlashcardsRoutes registers the flashcard set and card routes.
func SetupFlashcardsRoutes(app *fiber.App, repo *data.Repository) {
	api := app.Group("/api/flashcards")

	api.Get("/", ListSetsHandler(repo))
	api.Post("/", CreateSetHandler(repo))
	api.Put("/:id", RenameSetHandler(repo))
	api.Delete("/:id", DeleteSetHandler(repo))

	api.Post("/:id/cards", CreateCardHandler(repo))
	api.Delete("/:id/cards/:cardId", DeleteCardHandler(repo))
}
