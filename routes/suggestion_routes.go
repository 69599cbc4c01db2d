package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mastaskillz/course_studio/handlers"
	"github.com/mastaskillz/course_studio/middleware"
)

func SuggestionRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	suggestions := api.Group("/suggestions", middleware.Protected(), middleware.CreatorRequired())
	suggestions.Post("/titles", handlers.SuggestTitles)
	suggestions.Post("/summary", handlers.SuggestSummary)
	suggestions.Post("/quiz-questions", handlers.GenerateQuizQuestions)
	suggestions.Post("/translate", handlers.TranslateCourse)
}
