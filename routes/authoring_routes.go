package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mastaskillz/course_studio/handlers"
	"github.com/mastaskillz/course_studio/middleware"
)

func AuthoringRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	authoring := api.Group("/authoring", middleware.Protected(), middleware.CreatorRequired())

	authoring.Post("/session", handlers.StartSession)
	authoring.Delete("/session", handlers.ResetSession)
	authoring.Get("/course", handlers.GetCourse)
	authoring.Patch("/course", handlers.PatchCourse)

	authoring.Post("/languages", handlers.AddLanguage)
	authoring.Delete("/languages/:language", handlers.RemoveLanguage)
	authoring.Post("/translations", handlers.ApplyTranslation)

	modules := authoring.Group("/modules")
	modules.Post("", handlers.AddModule)
	modules.Patch("/:moduleId", handlers.UpdateModule)
	modules.Delete("/:moduleId", handlers.DeleteModule)

	modules.Post("/:moduleId/lessons", handlers.AddLesson)
	modules.Patch("/:moduleId/lessons/:lessonId", handlers.UpdateLesson)
	modules.Delete("/:moduleId/lessons/:lessonId", handlers.DeleteLesson)

	modules.Post("/:moduleId/quizzes", handlers.AddQuiz)
	modules.Patch("/:moduleId/quizzes/:quizId", handlers.UpdateQuiz)
	modules.Delete("/:moduleId/quizzes/:quizId", handlers.DeleteQuiz)

	modules.Post("/:moduleId/quizzes/:quizId/questions", handlers.AddQuestion)
	modules.Delete("/:moduleId/quizzes/:quizId/questions/:questionId", handlers.DeleteQuestion)
	modules.Put("/:moduleId/quizzes/:quizId/questions/:questionId/correct-option", handlers.SetCorrectOption)

	authoring.Post("/pricing/freemium", handlers.ToggleFreemiumContent)
	authoring.Put("/checklist", handlers.UpdateChecklist)

	authoring.Post("/steps/next", handlers.NextStep)
	authoring.Post("/steps/prev", handlers.PrevStep)
	authoring.Post("/steps/goto", handlers.GoToStep)

	authoring.Post("/save", handlers.SaveCourse)
}
