package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mastaskillz/course_studio/handlers"
	"github.com/mastaskillz/course_studio/middleware"
)

func CourseRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/catalog", handlers.ListPublishedCourses)

	courses := api.Group("/courses", middleware.Protected())
	courses.Get("", handlers.ListMyCourses)
	courses.Get("/:courseId", handlers.GetCourseByID)
	courses.Delete("/:courseId", handlers.DeleteCourse)
	courses.Post("/:courseId/enroll", handlers.EnrollInCourse)

	api.Get("/enrollments", middleware.Protected(), handlers.ListMyEnrollments)
}
