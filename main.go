package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/sskrishnan03/krishnan-study-planner/app/config"
	"github.com/sskrishnan03/krishnan-study-planner/app/data"
	"github.com/sskrishnan03/krishnan-study-planner/app/routes/analytics"
	"github.com/sskrishnan03/krishnan-study-planner/app/routes/assignments"
	"github.com/sskrishnan03/krishnan-study-planner/app/routes/dashboard"
	"github.com/sskrishnan03/krishnan-study-planner/app/routes/flashcards"
	"github.com/sskrishnan03/krishnan-study-planner/app/routes/settings"
	"github.com/sskrishnan03/krishnan-study-planner/app/routes/subjects"
	"github.com/sskrishnan03/krishnan-study-planner/app/routes/timetable"
	"github.com/sskrishnan03/krishnan-study-planner/app/suggest"
)

// errorHandler keeps every error a JSON response; storage and AI failures
// are already degraded to defaults below this layer.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	config.LoadEnv()
	config.Init()
	defer config.GetStore().Close()

	repo := data.NewRepository(config.GetStore())
	ai := suggest.NewClient(config.AppConfig.GeminiAPIKey)

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Routes, one package per screen
	dashboard.SetupDashboardRoutes(app, repo)
	subjects.SetupSubjectsRoutes(app, repo)
	timetable.SetupTimetableRoutes(app, repo)
	assignments.SetupAssignmentsRoutes(app, repo)
	flashcards.SetupFlashcardsRoutes(app, repo)
	analytics.SetupAnalyticsRoutes(app, repo, ai)
	settings.SetupSettingsRoutes(app, repo)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	addr := ":" + config.AppConfig.Port
	log.Println("Server starting on " + addr)
	log.Fatal(app.Listen(addr))
}
