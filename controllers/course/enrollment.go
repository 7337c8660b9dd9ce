package controllers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"cab/database"
	"cab/middleware"
	"cab/models"
	courseModels "cab/models/course"
	"cab/utils"
)

// EnrollInCourse enrolls the caller in a course
func EnrollInCourse(c *fiber.Ctx) error {
	userId, ok := principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course courseModels.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var existing courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", userId, course.ID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course!", nil)
	}

	enrollment := courseModels.Enrollment{
		UserID:   userId,
		CourseID: course.ID,
	}
	if err := db.Create(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll!", nil)
	}

	// Confirmation mail happens off the request path; enrollment stands
	// even if the mail fails.
	go func(courseTitle string, userID uint) {
		var user models.User
		if err := database.Database.Db.First(&user, userID).Error; err != nil {
			log.Printf("Error loading user %d for enrollment email: %v", userID, err)
			return
		}
		body := fmt.Sprintf("<p>You are now enrolled in <b>%s</b>.</p>", courseTitle)
		if err := utils.SendEmail([]string{user.Email}, "Enrollment confirmed", body); err != nil {
			log.Printf("Error sending enrollment email: %v", err)
		}
	}(course.Title, userId)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled successfully!", enrollment)
}

// GetUserEnrollments lists the caller's enrollments with course info
func GetUserEnrollments(c *fiber.Ctx) error {
	userId, ok := principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollments []courseModels.Enrollment
	err := database.Database.Db.
		Where("user_id = ?", userId).
		Order("created_at desc").
		Find(&enrollments).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}
