package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"

	"cab/database"
	"cab/middleware"
	courseModels "cab/models/course"
)

// AdminCreateSubject creates a catalog subject
func AdminCreateSubject(c *fiber.Ctx) error {
	if _, ok := principal(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSubject").(*struct {
		Title string `json:"title"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	subject := courseModels.Subject{
		Title: reqData.Title,
		Slug:  slug.Make(reqData.Title),
	}

	if err := database.Database.Db.Create(&subject).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Subject already exists!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Subject created successfully!", subject)
}

// GetSubjects lists subjects by title
func GetSubjects(c *fiber.Ctx) error {
	var subjects []courseModels.Subject
	err := database.Database.Db.Order("title asc").Find(&subjects).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch subjects!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subjects fetched successfully!", subjects)
}

// GetSubjectDetail returns one subject with its courses
func GetSubjectDetail(c *fiber.Ctx) error {
	subjectID := c.Locals("subjectID").(int)

	var subject courseModels.Subject
	if err := database.Database.Db.First(&subject, subjectID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
	}

	var courses []courseModels.Course
	err := database.Database.Db.
		Where("subject_id = ?", subject.ID).
		Order("created_at asc").
		Find(&courses).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subject fetched successfully!", fiber.Map{
		"subject": subject,
		"courses": courses,
	})
}
