package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mastaskillz/course_studio/authoring"
	"github.com/mastaskillz/course_studio/database"
	"github.com/mastaskillz/course_studio/middleware"
	"github.com/mastaskillz/course_studio/notifications"
	"github.com/mastaskillz/course_studio/services"
)

// Sessions hands out the per-creator authoring workspace. Wired up in main
// after the database connection exists.
var Sessions *authoring.Registry

func InitAuthoring() {
	Sessions = authoring.NewRegistry(func(creatorID string) authoring.CourseStore {
		id, err := uuid.Parse(creatorID)
		if err != nil {
			log.Printf("invalid creator id %q in session registry", creatorID)
		}
		return database.NewCourseStore(database.DB, id)
	})
}

func workspace(c *fiber.Ctx) *authoring.Workspace {
	return Sessions.Get(middleware.UserID(c))
}

type StartSessionRequest struct {
	CourseID string `json:"course_id"`
}

// StartSession resets the creator's workspace and, when a course id is
// given, loads that course for editing.
func StartSession(c *fiber.Ctx) error {
	var req StartSessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
		}
	}
	if req.CourseID == "" {
		req.CourseID = c.Query("courseId")
	}

	w := workspace(c)
	w.Reset()

	if req.CourseID != "" {
		if err := w.Session.Load(c.Context(), req.CourseID); err != nil {
			if errors.Is(err, authoring.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
			}
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to load course data"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"course": w.Session.Course(),
		"step":   w.Wizard.Step(),
	})
}

func ResetSession(c *fiber.Ctx) error {
	workspace(c).Reset()
	return c.SendStatus(fiber.StatusNoContent)
}

func GetCourse(c *fiber.Ctx) error {
	w := workspace(c)
	return c.JSON(fiber.Map{
		"course":    w.Session.Course(),
		"step":      w.Wizard.Step(),
		"checklist": w.Checklist(),
	})
}

func PatchCourse(c *fiber.Ctx) error {
	var patch authoring.CoursePatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	w := workspace(c)
	w.Session.Patch(patch)
	return c.JSON(w.Session.Course())
}

type LanguageRequest struct {
	Language string `json:"language" validate:"required"`
}

func AddLanguage(c *fiber.Ctx) error {
	var req LanguageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	w := workspace(c)
	w.Session.AddLanguage(req.Language)
	return c.JSON(fiber.Map{"languages": w.Session.Course().Languages})
}

func RemoveLanguage(c *fiber.Ctx) error {
	w := workspace(c)
	if err := w.Session.RemoveLanguage(c.Params("language")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot remove primary course language"})
	}
	return c.JSON(fiber.Map{"languages": w.Session.Course().Languages})
}

type ApplyTranslationRequest struct {
	Language    string                `json:"language" validate:"required"`
	Translation authoring.Translation `json:"translation"`
}

func ApplyTranslation(c *fiber.Ctx) error {
	var req ApplyTranslationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	w := workspace(c)
	w.Session.ApplyTranslation(req.Language, req.Translation)
	return c.JSON(w.Session.Course())
}

func AddModule(c *fiber.Ctx) error {
	var patch authoring.ModulePatch
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&patch); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
		}
	}
	w := workspace(c)
	moduleID := w.Session.AddModule(patch)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"module_id": moduleID})
}

// UpdateModule buffers the edit; rapid edits to the same module within the
// quiet window collapse into one commit.
func UpdateModule(c *fiber.Ctx) error {
	var patch authoring.ModulePatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	w := workspace(c)
	moduleID := c.Params("moduleId")
	w.Autosaver.Schedule(moduleID, func() {
		w.Session.UpdateModule(moduleID, patch)
	})
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"buffered": true})
}

func DeleteModule(c *fiber.Ctx) error {
	w := workspace(c)
	moduleID := c.Params("moduleId")
	w.Autosaver.Cancel(moduleID)
	if !w.Session.DeleteModule(moduleID) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Module not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func AddLesson(c *fiber.Ctx) error {
	var patch authoring.LessonPatch
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&patch); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
		}
	}
	w := workspace(c)
	lessonID, ok := w.Session.AddLesson(c.Params("moduleId"), patch)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Module not found"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"lesson_id": lessonID})
}

func UpdateLesson(c *fiber.Ctx) error {
	var patch authoring.LessonPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	w := workspace(c)
	moduleID := c.Params("moduleId")
	lessonID := c.Params("lessonId")
	w.Autosaver.Schedule(lessonID, func() {
		w.Session.UpdateLesson(moduleID, lessonID, patch)
	})
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"buffered": true})
}

func DeleteLesson(c *fiber.Ctx) error {
	w := workspace(c)
	lessonID := c.Params("lessonId")
	w.Autosaver.Cancel(lessonID)
	if !w.Session.DeleteLesson(c.Params("moduleId"), lessonID) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lesson not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func AddQuiz(c *fiber.Ctx) error {
	var patch authoring.QuizPatch
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&patch); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
		}
	}
	w := workspace(c)
	quizID, ok := w.Session.AddQuiz(c.Params("moduleId"), patch)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Module not found"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"quiz_id": quizID})
}

func UpdateQuiz(c *fiber.Ctx) error {
	var patch authoring.QuizPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	w := workspace(c)
	moduleID := c.Params("moduleId")
	quizID := c.Params("quizId")
	w.Autosaver.Schedule(quizID, func() {
		w.Session.UpdateQuiz(moduleID, quizID, patch)
	})
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"buffered": true})
}

func DeleteQuiz(c *fiber.Ctx) error {
	w := workspace(c)
	quizID := c.Params("quizId")
	w.Autosaver.Cancel(quizID)
	if !w.Session.DeleteQuiz(c.Params("moduleId"), quizID) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type AddQuestionRequest struct {
	Type string `json:"type" validate:"required,oneof=mcq truefalse shortanswer"`
}

func AddQuestion(c *fiber.Ctx) error {
	var req AddQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	w := workspace(c)
	question, ok := w.Session.AddQuestion(c.Params("moduleId"), c.Params("quizId"), req.Type)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
	}
	return c.Status(fiber.StatusCreated).JSON(question)
}

func DeleteQuestion(c *fiber.Ctx) error {
	w := workspace(c)
	if !w.Session.DeleteQuestion(c.Params("moduleId"), c.Params("quizId"), c.Params("questionId")) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type CorrectOptionRequest struct {
	OptionID string `json:"option_id" validate:"required"`
}

func SetCorrectOption(c *fiber.Ctx) error {
	var req CorrectOptionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	w := workspace(c)
	ok := w.Session.SetCorrectOption(c.Params("moduleId"), c.Params("quizId"), c.Params("questionId"), req.OptionID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question or option not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type FreemiumToggleRequest struct {
	ContentType string `json:"content_type" validate:"required,oneof=module lesson"`
	ContentID   string `json:"content_id" validate:"required"`
}

func ToggleFreemiumContent(c *fiber.Ctx) error {
	var req FreemiumToggleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	w := workspace(c)
	selected := w.Session.ToggleFreemium(req.ContentType, req.ContentID)
	return c.JSON(fiber.Map{
		"selected":         selected,
		"freemium_content": w.Session.Course().Pricing.FreemiumContent,
	})
}

func UpdateChecklist(c *fiber.Ctx) error {
	var cl authoring.Checklist
	if err := c.BodyParser(&cl); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	w := workspace(c)
	w.SetChecklist(cl)
	return c.JSON(cl)
}

// NextStep validates the current step and advances only when the error set
// is empty; the error set itself is the response either way.
func NextStep(c *fiber.Ctx) error {
	w := workspace(c)
	course := w.Session.Course()
	errs := authoring.ValidateStep(&course, w.Wizard.Step())
	if len(errs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": errs})
	}
	w.Wizard.Next()
	return c.JSON(fiber.Map{"step": w.Wizard.Step(), "errors": errs})
}

func PrevStep(c *fiber.Ctx) error {
	w := workspace(c)
	w.Wizard.Prev()
	return c.JSON(fiber.Map{"step": w.Wizard.Step()})
}

type GoToStepRequest struct {
	Step int `json:"step"`
}

func GoToStep(c *fiber.Ctx) error {
	var req GoToStepRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	w := workspace(c)
	if !w.Wizard.GoTo(req.Step) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot skip ahead to an unvisited step"})
	}
	return c.JSON(fiber.Map{"step": w.Wizard.Step()})
}

// SaveCourse persists the draft; with ?publish=true it runs the publish gate
// first and flips the course to published. Pending autosaves are committed
// before the snapshot is taken.
func SaveCourse(c *fiber.Ctx) error {
	w := workspace(c)
	w.Autosaver.Flush()

	publish := c.QueryBool("publish")
	if publish {
		course := w.Session.Course()
		errs := authoring.ValidatePublish(&course, w.Checklist())
		if len(errs) > 0 {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": errs})
		}
	}

	saved, err := w.Session.Save(c.Context(), publish)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to save course"})
	}

	if publish {
		go services.GenerateCourseOutline(saved)
		go notifications.SendPublishConfirmation(middleware.UserID(c), saved)
	}

	return c.JSON(saved)
}
