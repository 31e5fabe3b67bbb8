package analytics

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sskrishnan03/krishnan-study-planner/app/data"
	"github.com/sskrishnan03/krishnan-study-planner/app/suggest"
)

// SetupAnalyticsRoutes registers the analytics and AI suggestion routes.
func SetupAnalyticsRoutes(app *fiber.App, repo *data.Repository, ai *suggest.Client) {
	app.Get("/api/analytics", GetAnalyticsHandler(repo))
	app.Post("/api/analytics/suggestions", GetSuggestionsHandler(repo, ai))
}
