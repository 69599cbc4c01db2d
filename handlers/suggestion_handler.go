package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mastaskillz/course_studio/services"
)

// The suggestion endpoints never fail outright; when the remote generator is
// unavailable the service returns its local fallback output.

func SuggestTitles(c *fiber.Ctx) error {
	var req services.TitleSuggestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	return c.JSON(fiber.Map{"titles": services.SuggestTitles(req)})
}

func SuggestSummary(c *fiber.Ctx) error {
	var req services.SummarySuggestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	return c.JSON(fiber.Map{"summary": services.SuggestSummary(req)})
}

type GenerateQuizRequest struct {
	ModuleID string `json:"module_id" validate:"required"`
	Count    int    `json:"count" validate:"min=1,max=20"`
}

// GenerateQuizQuestions builds questions from the module currently in the
// creator's session.
func GenerateQuizQuestions(c *fiber.Ctx) error {
	var req GenerateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	course := workspace(c).Session.Course()
	for _, m := range course.Modules {
		if m.ID != req.ModuleID {
			continue
		}
		questions := services.GenerateQuizQuestions(services.QuizGenerationRequest{
			CourseTitle:       course.Title,
			ModuleTitle:       m.Title,
			ModuleDescription: m.Description,
			Lessons:           m.Lessons,
			Count:             req.Count,
		})
		return c.JSON(fiber.Map{"questions": questions})
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Module not found"})
}

type TranslateRequest struct {
	TargetLanguage string `json:"target_language" validate:"required"`
	Apply          bool   `json:"apply"`
}

// TranslateCourse translates the session's course; with apply=true the
// bundle is stored on the aggregate and the language added.
func TranslateCourse(c *fiber.Ctx) error {
	var req TranslateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	w := workspace(c)
	translation := services.TranslateCourse(services.TranslationRequest{
		Course:         w.Session.Course(),
		TargetLanguage: req.TargetLanguage,
	})
	if req.Apply {
		w.Session.ApplyTranslation(req.TargetLanguage, translation)
	}
	return c.JSON(fiber.Map{"translation": translation, "applied": req.Apply})
}
