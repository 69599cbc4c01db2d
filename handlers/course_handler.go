package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mastaskillz/course_studio/database"
	"github.com/mastaskillz/course_studio/middleware"
	"github.com/mastaskillz/course_studio/models"
)

// ListMyCourses returns the authenticated creator's courses, newest first.
func ListMyCourses(c *fiber.Ctx) error {
	creatorID, err := uuid.Parse(middleware.UserID(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user token"})
	}

	var courses []models.Course
	if err := database.DB.Where("creator_id = ?", creatorID).Order("updated_at desc").Find(&courses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch courses"})
	}
	return c.JSON(courses)
}

func GetCourseByID(c *fiber.Ctx) error {
	courseID := c.Params("courseId")
	var course models.Course
	if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}
	return c.JSON(course)
}

// ListPublishedCourses is the public catalog.
func ListPublishedCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.DB.Where("status = ?", "published").Order("created_at desc").Find(&courses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch courses"})
	}
	return c.JSON(courses)
}

func DeleteCourse(c *fiber.Ctx) error {
	creatorID, err := uuid.Parse(middleware.UserID(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user token"})
	}

	result := database.DB.Where("id = ? AND creator_id = ?", c.Params("courseId"), creatorID).Delete(&models.Course{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete course"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// EnrollInCourse records an enrollment and bumps the course counter.
func EnrollInCourse(c *fiber.Ctx) error {
	userID, err := uuid.Parse(middleware.UserID(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user token"})
	}
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course id"})
	}

	var course models.Course
	if err := database.DB.First(&course, "id = ? AND status = ?", courseID, "published").Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	var existing int64
	database.DB.Model(&models.Enrollment{}).
		Where("course_id = ? AND user_id = ?", courseID, userID).
		Count(&existing)
	if existing > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Already enrolled in this course"})
	}

	enrollment := models.Enrollment{
		CourseID:   courseID,
		UserID:     userID,
		Status:     "active",
		EnrolledAt: time.Now(),
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}
		return tx.Model(&course).Update("enrollment_count", gorm.Expr("enrollment_count + 1")).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to enroll"})
	}

	return c.Status(fiber.StatusCreated).JSON(enrollment)
}

func ListMyEnrollments(c *fiber.Ctx) error {
	userID, err := uuid.Parse(middleware.UserID(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user token"})
	}

	var enrollments []models.Enrollment
	if err := database.DB.Preload("Course").Where("user_id = ?", userID).Find(&enrollments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch enrollments"})
	}
	return c.JSON(enrollments)
}
