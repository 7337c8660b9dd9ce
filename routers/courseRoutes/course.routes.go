package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "cab/controllers/course"
	"cab/middleware"
	validators "cab/validators/course"
)

// SetupCourseRoutes sets up all student-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	subjectGroup := app.Group("/subject")
	subjectGroup.Get("/list", controllers.GetSubjects)
	subjectGroup.Get("/:id", validators.SubjectID(), controllers.GetSubjectDetail)

	userGroup := app.Group("/course")

	userGroup.Get("/list", controllers.GetAllCourses)
	userGroup.Get("/:id", validators.CourseID(), controllers.GetCourseDetails)

	// Enrollment
	userGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)

	// Full content for enrolled students
	userGroup.Get("/:id/contents", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseContents)

	userEnrollGroup := app.Group("/user")
	userEnrollGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.GetUserEnrollments)
}
