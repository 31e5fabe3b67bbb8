package assignments

import (
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/sskrishnan03/krishnan-study-planner/app/data"
	"github.com/sskrishnan03/krishnan-study-planner/app/models"
	"github.com/sskrishnan03/krishnan-study-planner/app/stats"
)

type assignmentView struct {
	models.Assignment
	EffectiveStatus models.AssignmentStatus `json:"effectiveStatus"`
	SubjectName     string                  `json:"subjectName"`
}

func viewOf(a models.Assignment, subjects []models.Subject, now time.Time) assignmentView {
	return assignmentView{
		Assignment:      a,
		EffectiveStatus: stats.EffectiveStatus(a, now),
		SubjectName:     stats.SubjectName(subjects, a.SubjectID),
	}
}

// ListAssignmentsHandler returns all assignments ordered by due date,
// each with its derived status and resolved subject name.
func ListAssignmentsHandler(repo *data.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		assignments := repo.Assignments()
		subjects := repo.Subjects()
		now := time.Now()

		sort.SliceStable(assignments, func(i, j int) bool {
			return assignments[i].DueDate < assignments[j].DueDate
		})

		views := make([]assignmentView, 0, len(assignments))
		for _, a := range assignments {
			views = append(views, viewOf(a, subjects, now))
		}
		return c.JSON(fiber.Map{"assignments": views})
	}
}

func CreateAssignmentHandler(repo *data.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type createRequest struct {
			Title     string `json:"title" validate:"required"`
			SubjectID string `json:"subjectId"`
			DueDate   string `json:"dueDate" validate:"required,datetime=2006-01-02"`
		}

		var req createRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}
		if err := validator.New().Struct(req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Title and a due date (YYYY-MM-DD) are required"})
		}

		assignment, ok := repo.AddAssignment(req.Title, req.SubjectID, req.DueDate)
		if !ok {
			return c.Status(400).JSON(fiber.Map{"error": "Title and a due date (YYYY-MM-DD) are required"})
		}
		return c.Status(201).JSON(fiber.Map{"assignment": viewOf(assignment, repo.Subjects(), time.Now())})
	}
}

func UpdateAssignmentHandler(repo *data.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type updateRequest struct {
			Title     string `json:"title" validate:"required"`
			SubjectID string `json:"subjectId"`
			DueDate   string `json:"dueDate" validate:"required,datetime=2006-01-02"`
		}

		var req updateRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}
		if err := validator.New().Struct(req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Title and a due date (YYYY-MM-DD) are required"})
		}

		assignment, ok := repo.UpdateAssignment(c.Params("id"), req.Title, req.SubjectID, req.DueDate)
		if !ok {
			return c.Status(404).JSON(fiber.Map{"error": "Assignment not found"})
		}
		return c.JSON(fiber.Map{"assignment": viewOf(assignment, repo.Subjects(), time.Now())})
	}
}

// SetStatusHandler stores Pending or Completed. Overdue cannot be stored;
// it is derived from the due date.
func SetStatusHandler(repo *data.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type statusRequest struct {
			Status models.AssignmentStatus `json:"status" validate:"required,oneof=Pending Completed"`
		}

		var req statusRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}
		if err := validator.New().Struct(req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Status must be Pending or Completed"})
		}

		assignment, ok := repo.SetAssignmentStatus(c.Params("id"), req.Status)
		if !ok {
			return c.Status(404).JSON(fiber.Map{"error": "Assignment not found"})
		}
		return c.JSON(fiber.Map{"assignment": viewOf(assignment, repo.Subjects(), time.Now())})
	}
}

func DeleteAssignmentHandler(repo *data.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !repo.DeleteAssignment(c.Params("id")) {
			return c.Status(404).JSON(fiber.Map{"error": "Assignment not found"})
		}
		return c.JSON(fiber.Map{"message": "Assignment deleted"})
	}
}
