package courseValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"cab/middleware"
)

// idParam parses a positive integer route param.
func idParam(c *fiber.Ctx, param string) (int, bool) {
	raw := strings.TrimSpace(c.Params(param))
	id, err := strconv.Atoi(raw)
	if raw == "" || err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ============ Course Validators ============

// CreateCourseAdmin validates admin course creation request
func CreateCourseAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SubjectID uint   `json:"subject_id"`
			Title     string `json:"title"`
			Overview  string `json:"overview"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Overview = strings.TrimSpace(reqData.Overview)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		} else if len(reqData.Title) > 200 {
			errors["title"] = "Title must be at most 200 characters long!"
		}

		if reqData.Overview == "" {
			errors["overview"] = "Overview is required!"
		}

		if reqData.SubjectID == 0 {
			errors["subject_id"] = "Subject is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourseAdmin validates admin course update request
func UpdateCourseAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := idParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		c.Locals("courseID", courseID)

		reqData := new(struct {
			SubjectID uint   `json:"subject_id"`
			Title     string `json:"title"`
			Overview  string `json:"overview"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Overview = strings.TrimSpace(reqData.Overview)

		if reqData.Title != "" && len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if len(reqData.Title) > 200 {
			errors["title"] = "Title must be at most 200 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// CourseID validates the :id route param for detail/delete/list routes
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := idParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		c.Locals("courseID", courseID)
		return c.Next()
	}
}
