package settings

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sskrishnan03/krishnan-study-planner/app/data"
	"github.com/sskrishnan03/krishnan-study-planner/app/models"
)

func GetDarkModeHandler(repo *data.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"darkMode": repo.DarkMode()})
	}
}

func SetDarkModeHandler(repo *data.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type darkModeRequest struct {
			DarkMode bool `json:"darkMode"`
		}

		var req darkModeRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}

		repo.SetDarkMode(req.DarkMode)
		return c.JSON(fiber.Map{"darkMode": req.DarkMode})
	}
}

func GetPomodoroHandler(repo *data.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"pomodoro": repo.Pomodoro()})
	}
}

func SetPomodoroHandler(repo *data.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.PomodoroSettings
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}

		if !repo.SetPomodoro(req) {
			return c.Status(400).JSON(fiber.Map{"error": "Durations and cycle count must be positive"})
		}
		return c.JSON(fiber.Map{"pomodoro": req})
	}
}

func ResetPomodoroHandler(repo *data.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"pomodoro": repo.ResetPomodoro()})
	}
}
