package dashboard

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sskrishnan03/krishnan-study-planner/app/data"
	"github.com/sskrishnan03/krishnan-study-planner/app/stats"
)

const upcomingLimit = 3

// GetDashboardHandler assembles the dashboard screen: a quote, every
// subject's progress and the three closest non-completed assignments.
func GetDashboardHandler(repo *data.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		subjects := repo.Subjects()
		now := time.Now()

		progress := make([]fiber.Map, 0, len(subjects))
		for _, s := range subjects {
			progress = append(progress, fiber.Map{
				"id":       s.ID,
				"name":     s.Name,
				"color":    s.Color,
				"progress": stats.SubjectProgress(s),
			})
		}

		upcoming := stats.UpcomingAssignments(repo.Assignments(), upcomingLimit)
		upcomingViews := make([]fiber.Map, 0, len(upcoming))
		for _, a := range upcoming {
			upcomingViews = append(upcomingViews, fiber.Map{
				"id":              a.ID,
				"title":           a.Title,
				"dueDate":         a.DueDate,
				"status":          a.Status,
				"effectiveStatus": stats.EffectiveStatus(a, now),
				"subjectName":     stats.SubjectName(subjects, a.SubjectID),
			})
		}

		return c.JSON(fiber.Map{
			"quote":               stats.Quote(),
			"subjects":            progress,
			"upcomingAssignments": upcomingViews,
		})
	}
}
