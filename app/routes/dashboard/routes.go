package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sskrishnan03/krishnan-study-planner/app/data"
)

// SetupDashboardRoutes registers the dashboard overview route.
func SetupDashboardRoutes(app *fiber.App, repo *data.Repository) {
	app.Get("/api/dashboard", GetDashboardHandler(repo))
}
