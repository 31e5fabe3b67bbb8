package analytics

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sskrishnan03/krishnan-study-planner/app/data"
	"github.com/sskrishnan03/krishnan-study-planner/app/stats"
	"github.com/sskrishnan03/krishnan-study-planner/app/suggest"
)

// GetAnalyticsHandler returns per-subject progress, assignment totals by
// effective status and the overall progress mean.
func GetAnalyticsHandler(repo *data.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		subjects := repo.Subjects()

		progress := make([]fiber.Map, 0, len(subjects))
		for _, s := range subjects {
			progress = append(progress, fiber.Map{
				"name":     s.Name,
				"color":    s.Color,
				"progress": stats.SubjectProgress(s),
			})
		}

		return c.JSON(fiber.Map{
			"subjectProgress": progress,
			"assignments":     stats.CountAssignments(repo.Assignments(), time.Now()),
			"overallProgress": stats.OverallProgress(subjects),
		})
	}
}

// GetSuggestionsHandler asks the AI adapter for study advice. The adapter
// never fails: with no key configured it answers with its disabled
// message, and on any call failure with its fallback message.
func GetSuggestionsHandler(repo *data.Repository, ai *suggest.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		text := ai.StudySuggestions(c.UserContext(), repo.Subjects())
		return c.JSON(fiber.Map{"suggestions": text})
	}
}
