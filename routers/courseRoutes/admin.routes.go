package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "cab/controllers/course"
	"cab/middleware"
	validators "cab/validators/course"
)

// SetupAdminCourseRoutes sets up all course authoring routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course")

	// Course CRUD
	adminGroup.Post("/create", middleware.JWTMiddleware, validators.CreateCourseAdmin(), controllers.AdminCreateCourse)
	adminGroup.Put("/:id", middleware.JWTMiddleware, validators.UpdateCourseAdmin(), controllers.AdminUpdateCourse)
	adminGroup.Delete("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.AdminDeleteCourse)
	adminGroup.Get("/list", middleware.JWTMiddleware, controllers.AdminGetAllCourses)
	adminGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.AdminGetCourseDetails)

	// Bulk reorder (drag and drop). The body maps entity id to position;
	// both respond with {"saved":"OK","applied":n}.
	adminGroup.Post("/module/order", middleware.JWTMiddleware, validators.ReorderBatch(), controllers.AdminReorderModules)
	adminGroup.Post("/content/order", middleware.JWTMiddleware, validators.ReorderBatch(), controllers.AdminReorderContents)

	// Module Management
	adminGroup.Post("/:id/module", middleware.JWTMiddleware, validators.CreateModule(), controllers.AdminCreateModule)
	adminGroup.Put("/:course_id/module/:module_id", middleware.JWTMiddleware, validators.UpdateModule(), controllers.AdminUpdateModule)
	adminGroup.Delete("/:course_id/module/:module_id", middleware.JWTMiddleware, validators.ModulePath(), controllers.AdminDeleteModule)
	adminGroup.Get("/:id/modules", middleware.JWTMiddleware, validators.CourseID(), controllers.AdminListModules)

	// Content Management. The :kind segment is one of text, video, image,
	// file; anything else is a 404.
	adminGroup.Post("/:course_id/module/:module_id/content/:kind", middleware.JWTMiddleware, validators.CreateContentAdmin(), controllers.AdminCreateContent)
	adminGroup.Put("/:course_id/module/:module_id/content/:kind/:item_id", middleware.JWTMiddleware, validators.UpdateContentAdmin(), controllers.AdminUpdateContent)
	adminGroup.Get("/:course_id/module/:module_id/content", middleware.JWTMiddleware, validators.ModulePath(), controllers.AdminGetModuleContent)

	contentGroup := app.Group("/admin/content")
	contentGroup.Delete("/:content_id", middleware.JWTMiddleware, validators.DeleteContentAdmin(), controllers.AdminDeleteContent)

	// Subjects
	subjectGroup := app.Group("/admin/subject")
	subjectGroup.Post("/create", middleware.JWTMiddleware, validators.CreateSubject(), controllers.AdminCreateSubject)

	// Dashboard
	dashGroup := app.Group("/admin/dashboard")
	dashGroup.Get("/stats", middleware.JWTMiddleware, controllers.AdminDashboardStats)
}
