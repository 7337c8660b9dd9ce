package courseValidator

import (
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"cab/middleware"
)

// ReorderBatch parses a drag-and-drop batch: a JSON object mapping entity
// id (string) to its new position, e.g. {"12": 0, "15": 2}.
func ReorderBatch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var raw map[string]int
		if err := json.Unmarshal(c.Body(), &raw); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		updates := make(map[uint]int, len(raw))
		for key, pos := range raw {
			id, err := strconv.ParseUint(key, 10, 32)
			if err != nil || id == 0 {
				errors[key] = "Invalid entity id!"
				continue
			}
			if pos < 0 {
				errors[key] = "Position must be non-negative!"
				continue
			}
			updates[uint(id)] = pos
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("reorderUpdates", updates)
		return c.Next()
	}
}
