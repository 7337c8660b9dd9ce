package courseValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"cab/middleware"
)

// CreateSubject validates subject creation
func CreateSubject() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title string `json:"title"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		if reqData.Title == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"title": "Title is required!"})
		}
		if len(reqData.Title) > 200 {
			return middleware.ValidationErrorResponse(c, map[string]string{"title": "Title must be at most 200 characters long!"})
		}

		c.Locals("validatedSubject", reqData)
		return c.Next()
	}
}

// SubjectID validates the :id route param
func SubjectID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		subjectID, ok := idParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Subject ID!", nil)
		}
		c.Locals("subjectID", subjectID)
		return c.Next()
	}
}
