package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"cab/database"
	"cab/middleware"
	courseModels "cab/models/course"
)

// GetAllCourses lists every course in the catalog
func GetAllCourses(c *fiber.Ctx) error {
	var courses []courseModels.Course
	err := database.Database.Db.Order("created_at desc").Find(&courses).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetCourseDetails returns a course with its ordered module outline
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	modules, err := st().ModulesByCourse(course.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}
	course.Modules = modules

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

// ModuleWithContent is a module plus its rendered contents, for the
// enrolled-student course view.
type ModuleWithContent struct {
	courseModels.Module
	Contents []ContentView `json:"contents"`
}

// GetCourseContents returns the full course body, modules and rendered
// contents in display order. Only enrolled students get through.
func GetCourseContents(c *fiber.Ctx) error {
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

	var enrollment courseModels.Enrollment
	err := db.Where("user_id = ? AND course_id = ?", userId, course.ID).
		First(&enrollment).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this course!", nil)
	}

	modules, err := st().ModulesByCourse(course.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	out := make([]ModuleWithContent, 0, len(modules))
	for _, mod := range modules {
		views, err := renderContents(mod.ID)
		if err != nil {
			log.Printf("Error rendering module %d contents: %v", mod.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch content!", nil)
		}
		out = append(out, ModuleWithContent{Module: mod, Contents: views})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course content fetched successfully!", fiber.Map{
		"course":  course,
		"modules": out,
	})
}
