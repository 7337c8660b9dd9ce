package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"

	"cab/database"
	"cab/middleware"
	courseModels "cab/models/course"
)

// AdminDashboardStats summarizes the caller's authoring activity
func AdminDashboardStats(c *fiber.Ctx) error {
	userId, ok := principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var totalCourses, totalModules, totalEnrollments int64
	db.Model(&courseModels.Course{}).Where("owner_id = ?", userId).Count(&totalCourses)
	db.Model(&courseModels.Module{}).
		Joins("JOIN courses ON courses.id = modules.course_id AND courses.deleted_at IS NULL").
		Where("courses.owner_id = ?", userId).
		Count(&totalModules)
	db.Model(&courseModels.Enrollment{}).
		Joins("JOIN courses ON courses.id = enrollments.course_id AND courses.deleted_at IS NULL").
		Where("courses.owner_id = ?", userId).
		Count(&totalEnrollments)

	weekStart := now.BeginningOfWeek()
	monthStart := now.BeginningOfMonth()

	var coursesThisWeek, coursesThisMonth int64
	db.Model(&courseModels.Course{}).
		Where("owner_id = ? AND created_at >= ?", userId, weekStart).
		Count(&coursesThisWeek)
	db.Model(&courseModels.Course{}).
		Where("owner_id = ? AND created_at >= ?", userId, monthStart).
		Count(&coursesThisMonth)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"total_courses":      totalCourses,
		"total_modules":      totalModules,
		"total_enrollments":  totalEnrollments,
		"courses_this_week":  coursesThisWeek,
		"courses_this_month": coursesThisMonth,
		"generated_at":       time.Now(),
	})
}
