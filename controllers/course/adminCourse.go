package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"

	"cab/database"
	"cab/middleware"
	courseModels "cab/models/course"
)

// AdminCreateCourse creates a new course owned by the caller
func AdminCreateCourse(c *fiber.Ctx) error {
	userId, ok := principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*struct {
		SubjectID uint   `json:"subject_id"`
		Title     string `json:"title"`
		Overview  string `json:"overview"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var subject courseModels.Subject
	if err := db.First(&subject, reqData.SubjectID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
	}

	course := courseModels.Course{
		OwnerID:   userId,
		SubjectID: subject.ID,
		Title:     reqData.Title,
		Slug:      slug.Make(reqData.Title),
		Overview:  reqData.Overview,
	}

	if err := db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminUpdateCourse updates a course the caller owns
func AdminUpdateCourse(c *fiber.Ctx) error {
	userId, ok := principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	course, err := ownedCourse(userId, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*struct {
		SubjectID uint   `json:"subject_id"`
		Title     string `json:"title"`
		Overview  string `json:"overview"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if reqData.SubjectID != 0 {
		var subject courseModels.Subject
		if err := db.First(&subject, reqData.SubjectID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
		}
		course.SubjectID = subject.ID
	}
	if reqData.Title != "" {
		course.Title = reqData.Title
		course.Slug = slug.Make(reqData.Title)
	}
	if reqData.Overview != "" {
		course.Overview = reqData.Overview
	}

	if err := db.Save(course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// AdminDeleteCourse removes a course the caller owns, cascading through
// modules, contents and their items
func AdminDeleteCourse(c *fiber.Ctx) error {
	userId, ok := principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	course, err := ownedCourse(userId, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := st().DeleteCourse(course.ID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// AdminGetAllCourses lists the caller's courses
func AdminGetAllCourses(c *fiber.Ctx) error {
	userId, ok := principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []courseModels.Course
	err := database.Database.Db.
		Where("owner_id = ?", userId).
		Order("created_at desc").
		Find(&courses).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// AdminGetCourseDetails returns one owned course with its ordered modules
func AdminGetCourseDetails(c *fiber.Ctx) error {
	userId, ok := principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	course, err := ownedCourse(userId, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	modules, err := st().ModulesByCourse(course.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}
	course.Modules = modules

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}
