package timetable

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/sskrishnan03/krishnan-study-planner/app/data"
	"github.com/sskrishnan03/krishnan-study-planner/app/models"
	"github.com/sskrishnan03/krishnan-study-planner/app/stats"
)

// GetTimetableHandler returns the raw tasks plus their grid placements.
// Tasks whose times do not line up with the hourly grid appear in tasks
// but not in placements.
func GetTimetableHandler(repo *data.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tasks := repo.Tasks()
		return c.JSON(fiber.Map{
			"days":       models.Days,
			"timeSlots":  stats.TimeSlots,
			"tasks":      tasks,
			"placements": stats.PlaceTasks(tasks),
		})
	}
}

type taskRequest struct {
	Title     string `json:"title" validate:"required"`
	SubjectID string `json:"subjectId"`
	Day       string `json:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime   string `json:"endTime" validate:"required,datetime=15:04"`
}

func CreateTaskHandler(repo *data.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req taskRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}
		if err := validator.New().Struct(req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Title, a weekday and HH:MM times are required"})
		}

		task, ok := repo.AddTask(req.Title, req.SubjectID, req.Day, req.StartTime, req.EndTime)
		if !ok {
			return c.Status(400).JSON(fiber.Map{"error": "Title, a weekday and HH:MM times are required"})
		}
		return c.Status(201).JSON(fiber.Map{"task": task})
	}
}

func UpdateTaskHandler(repo *data.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req taskRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}
		if err := validator.New().Struct(req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Title, a weekday and HH:MM times are required"})
		}

		task, ok := repo.UpdateTask(c.Params("id"), req.Title, req.SubjectID, req.Day, req.StartTime, req.EndTime)
		if !ok {
			return c.Status(404).JSON(fiber.Map{"error": "Task not found"})
		}
		return c.JSON(fiber.Map{"task": task})
	}
}

func DeleteTaskHandler(repo *data.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !repo.DeleteTask(c.Params("id")) {
			return c.Status(404).JSON(fiber.Map{"error": "Task not found"})
		}
		return c.JSON(fiber.Map{"message": "Task deleted"})
	}
}
