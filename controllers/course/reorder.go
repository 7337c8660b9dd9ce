package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"cab/middleware"
)

// AdminReorderModules applies a drag-and-drop batch of module positions.
// Entries for modules the caller does not own drop out of the batch
// silently; the applied count is the only hint. The response never names
// which ids were dropped.
func AdminReorderModules(c *fiber.Ctx) error {
	userId, ok := principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	updates, ok := c.Locals("reorderUpdates").(map[uint]int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	applied, err := st().ReorderModules(userId, updates)
	if err != nil {
		log.Printf("Error reordering modules: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save order!", nil)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"saved": "OK", "applied": applied})
}

// AdminReorderContents is the content-row counterpart of
// AdminReorderModules, scoped through module and course ownership.
func AdminReorderContents(c *fiber.Ctx) error {
	userId, ok := principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	updates, ok := c.Locals("reorderUpdates").(map[uint]int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	applied, err := st().ReorderContents(userId, updates)
	if err != nil {
		log.Printf("Error reordering contents: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save order!", nil)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"saved": "OK", "applied": applied})
}
