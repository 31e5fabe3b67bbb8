package flashcards

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/sskrishnan03/krishnan-study-planner/app/data"
)

func ListSetsHandler(repo *data.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"sets": repo.FlashcardSets()})
	}
}

func CreateSetHandler(repo *data.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type createRequest struct {
			Title string `json:"title" validate:"required"`
		}

		var req createRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}
		if err := validator.New().Struct(req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Set title is required"})
		}

		set, ok := repo.AddFlashcardSet(req.Title)
		if !ok {
			return c.Status(400).JSON(fiber.Map{"error": "Set title is required"})
		}
		return c.Status(201).JSON(fiber.Map{"set": set})
	}
}

func RenameSetHandler(repo *data.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type renameRequest struct {
			Title string `json:"title" validate:"required"`
		}

		var req renameRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}
		if err := validator.New().Struct(req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Set title is required"})
		}

		set, ok := repo.RenameFlashcardSet(c.Params("id"), req.Title)
		if !ok {
			return c.Status(404).JSON(fiber.Map{"error": "Flashcard set not found"})
		}
		return c.JSON(fiber.Map{"set": set})
	}
}

func DeleteSetHandler(repo *data.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !repo.DeleteFlashcardSet(c.Params("id")) {
			return c.Status(404).JSON(fiber.Map{"error": "Flashcard set not found"})
		}
		return c.JSON(fiber.Map{"message": "Flashcard set deleted"})
	}
}

func CreateCardHandler(repo *data.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type createRequest struct {
			Question string `json:"question" validate:"required"`
			Answer   string `json:"answer" validate:"required"`
		}

		var req createRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}
		if err := validator.New().Struct(req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Question and answer are required"})
		}

		card, ok := repo.AddFlashcard(c.Params("id"), req.Question, req.Answer)
		if !ok {
			return c.Status(404).JSON(fiber.Map{"error": "Flashcard set not found"})
		}
		return c.Status(201).JSON(fiber.Map{"card": card})
	}
}

func DeleteCardHandler(repo *data.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !repo.DeleteFlashcard(c.Params("id"), c.Params("cardId")) {
			return c.Status(404).JSON(fiber.Map{"error": "Flashcard not found"})
		}
		return c.JSON(fiber.Map{"message": "Flashcard deleted"})
	}
}
