package subjects

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/sskrishnan03/krishnan-study-planner/app/data"
	"github.com/sskrishnan03/krishnan-study-planner/app/models"
	"github.com/sskrishnan03/krishnan-study-planner/app/stats"
)

// defaultColor is used when a subject is created without one.
const defaultColor = "#60a5fa"

type subjectView struct {
	models.Subject
	Progress int `json:"progress"`
}

func viewOf(s models.Subject) subjectView {
	return subjectView{Subject: s, Progress: stats.SubjectProgress(s)}
}

// ListSubjectsHandler returns all subjects with their progress. Optional
// query params: sort=name|progress, order=asc|desc.
func ListSubjectsHandler(repo *data.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		subjects := repo.Subjects()

		if key := c.Query("sort"); key != "" {
			if key != string(stats.SortByName) && key != string(stats.SortByProgress) {
				return c.Status(400).JSON(fiber.Map{"error": "sort must be name or progress"})
			}
			subjects = stats.SortSubjects(subjects, stats.SortKey(key), c.Query("order") == "desc")
		}

		views := make([]subjectView, 0, len(subjects))
		for _, s := range subjects {
			views = append(views, viewOf(s))
		}
		return c.JSON(fiber.Map{"subjects": views})
	}
}

func GetSubjectHandler(repo *data.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		subject, ok := stats.SubjectByID(repo.Subjects(), c.Params("id"))
		if !ok {
			return c.Status(404).JSON(fiber.Map{"error": "Subject not found"})
		}
		return c.JSON(fiber.Map{"subject": viewOf(subject)})
	}
}

func CreateSubjectHandler(repo *data.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type createRequest struct {
			Name  string `json:"name" validate:"required"`
			Color string `json:"color"`
		}

		var req createRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}
		if err := validator.New().Struct(req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Subject name is required"})
		}
		if req.Color == "" {
			req.Color = defaultColor
		}

		subject, ok := repo.AddSubject(req.Name, req.Color)
		if !ok {
			return c.Status(400).JSON(fiber.Map{"error": "Subject name is required"})
		}
		return c.Status(201).JSON(fiber.Map{"subject": viewOf(subject)})
	}
}

func UpdateSubjectHandler(repo *data.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type updateRequest struct {
			Name  string `json:"name" validate:"required"`
			Color string `json:"color" validate:"required"`
		}

		var req updateRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}
		if err := validator.New().Struct(req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Name and color are required"})
		}

		subject, ok := repo.UpdateSubject(c.Params("id"), req.Name, req.Color)
		if !ok {
			return c.Status(404).JSON(fiber.Map{"error": "Subject not found"})
		}
		return c.JSON(fiber.Map{"subject": viewOf(subject)})
	}
}

// DeleteSubjectHandler removes a subject and its topics. Assignments and
// tasks that referenced it are left alone. The remaining subjects come
// back in the response so a client whose selection was deleted can fall
// back to the first remaining one.
func DeleteSubjectHandler(repo *data.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !repo.DeleteSubject(c.Params("id")) {
			return c.Status(404).JSON(fiber.Map{"error": "Subject not found"})
		}

		remaining := repo.Subjects()
		views := make([]subjectView, 0, len(remaining))
		for _, s := range remaining {
			views = append(views, viewOf(s))
		}
		return c.JSON(fiber.Map{"message": "Subject deleted", "subjects": views})
	}
}

func CreateTopicHandler(repo *data.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type createRequest struct {
			Name string `json:"name" validate:"required"`
		}

		var req createRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}
		if err := validator.New().Struct(req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Topic name is required"})
		}

		topic, ok := repo.AddTopic(c.Params("id"), req.Name)
		if !ok {
			return c.Status(404).JSON(fiber.Map{"error": "Subject not found"})
		}
		return c.Status(201).JSON(fiber.Map{"topic": topic})
	}
}

func ToggleTopicHandler(repo *data.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		topic, ok := repo.ToggleTopic(c.Params("id"), c.Params("topicId"))
		if !ok {
			return c.Status(404).JSON(fiber.Map{"error": "Topic not found"})
		}
		return c.JSON(fiber.Map{"topic": topic})
	}
}

func DeleteTopicHandler(repo *data.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !repo.DeleteTopic(c.Params("id"), c.Params("topicId")) {
			return c.Status(404).JSON(fiber.Map{"error": "Topic not found"})
		}
		return c.JSON(fiber.Map{"message": "Topic deleted"})
	}
}
