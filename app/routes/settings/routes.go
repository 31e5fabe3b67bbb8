package settings

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sskrishnan03/krishnan-study-planner/app/data"
)

// SetupSettingsRoutes registers the dark mode and pomodoro routes.
func SetupSettingsRoutes(app *fiber.App, repo *data.Repository) {
	api := app.Group("/api/settings")

	api.Get("/darkmode", GetDarkModeHandler(repo))
	api.Put("/darkmode", SetDarkModeHandler(repo))

	api.Get("/pomodoro", GetPomodoroHandler(repo))
	api.Put("/pomodoro", SetPomodoroHandler(repo))
	api.Post("/pomodoro/reset", ResetPomodoroHandler(repo))
}
