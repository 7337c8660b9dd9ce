package courseValidator

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"

	"cab/middleware"
	"cab/models/course"
	"cab/store"
)

// Fields the server stamps itself. A payload naming any of them is
// rejected outright rather than silently ignored.
var reservedItemFields = []string{
	"owner", "owner_id", "position",
	"created", "created_at", "updated", "updated_at",
	"file_path",
}

func reservedFieldErrors(keys map[string]json.RawMessage) map[string]string {
	errors := make(map[string]string)
	for _, f := range reservedItemFields {
		if _, present := keys[f]; present {
			errors[f] = "Field is not editable!"
		}
	}
	return errors
}

func contentPath(c *fiber.Ctx) bool {
	courseID, ok := idParam(c, "course_id")
	if !ok {
		return false
	}
	moduleID, ok := idParam(c, "module_id")
	if !ok {
		return false
	}
	c.Locals("courseID", courseID)
	c.Locals("moduleID", moduleID)
	return true
}

// itemPayload pulls the item attributes for :kind out of the request.
// Text and video come as JSON; image and file come as multipart forms
// whose blob the controller stores. Reserved fields are refused either
// way.
func itemPayload(c *fiber.Ctx, kind string) error {
	switch kind {
	case course.KindText, course.KindVideo:
		var keys map[string]json.RawMessage
		if err := json.Unmarshal(c.Body(), &keys); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errors := reservedFieldErrors(keys); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		attrs := store.ItemAttrs{}
		if err := json.Unmarshal(c.Body(), &attrs); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		attrs.Title = strings.TrimSpace(attrs.Title)
		attrs.FilePath = ""
		c.Locals("itemAttrs", attrs)

	case course.KindImage, course.KindFile:
		form, err := c.MultipartForm()
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Expected multipart form data!", nil)
		}
		errors := make(map[string]string)
		for _, f := range reservedItemFields {
			if _, present := form.Value[f]; present {
				errors[f] = "Field is not editable!"
			}
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}
		c.Locals("itemAttrs", store.ItemAttrs{Title: strings.TrimSpace(c.FormValue("title"))})
	}
	return c.Next()
}

// CreateContentAdmin validates content creation under a module. An
// unknown kind in the path reads as not found, same as a missing route.
func CreateContentAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !contentPath(c) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
		}

		kind := c.Params("kind")
		if !course.IsAllowedKind(kind) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Not found!", nil)
		}
		c.Locals("contentKind", kind)

		return itemPayload(c, kind)
	}
}

// UpdateContentAdmin validates an item edit. The content row keeps its
// position; only the referenced item changes.
func UpdateContentAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !contentPath(c) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
		}

		kind := c.Params("kind")
		if !course.IsAllowedKind(kind) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Not found!", nil)
		}
		c.Locals("contentKind", kind)

		itemID, ok := idParam(c, "item_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Item ID!", nil)
		}
		c.Locals("itemID", itemID)

		return itemPayload(c, kind)
	}
}

// DeleteContentAdmin validates the :content_id param
func DeleteContentAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		contentID, ok := idParam(c, "content_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Content ID!", nil)
		}
		c.Locals("contentID", contentID)
		return c.Next()
	}
}
