package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"cab/config"
	"cab/middleware"
	courseModels "cab/models/course"
	"cab/store"
	"cab/utils"
)

// ContentView is what content listings return: the row plus the rendered
// representation of whatever kind of item it references.
type ContentView struct {
	ID       uint                  `json:"id"`
	Position int                   `json:"position"`
	Item     courseModels.Rendered `json:"item"`
}

func itemErrorResponse(c *fiber.Ctx, err error) error {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		return middleware.ValidationErrorResponse(c, verr.Fields)
	case errors.Is(err, store.ErrInvalidKind), errors.Is(err, store.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Not found!", nil)
	}
	log.Printf("content item error: %v", err)
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
}

// errFileRequired marks a create request that came without an upload.
var errFileRequired = errors.New("file required")

// blobAttrs stores an uploaded blob and fills in its generated filename.
// required distinguishes create (must upload) from edit (may keep the
// existing blob). It never writes the response itself; a non-nil error
// means the request must not proceed, and the caller maps it through
// blobErrorResponse.
func blobAttrs(c *fiber.Ctx, attrs *store.ItemAttrs, required bool) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		if required {
			return errFileRequired
		}
		return nil
	}
	stored, err := utils.SaveUploadedFile(fileHeader, config.AppConfig.UploadDir)
	if err != nil {
		return err
	}
	attrs.FilePath = stored
	return nil
}

func blobErrorResponse(c *fiber.Ctx, err error) error {
	if errors.Is(err, errFileRequired) {
		return middleware.ValidationErrorResponse(c, map[string]string{"file": "File is required!"})
	}
	log.Printf("Error storing uploaded file: %v", err)
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store file!", nil)
}

// AdminCreateContent creates an item of the path's kind and appends a
// content row referencing it to the module's ordered list.
func AdminCreateContent(c *fiber.Ctx) error {
	userId, ok := principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	moduleID := c.Locals("moduleID").(int)
	kind := c.Locals("contentKind").(string)

	module, err := ownedModule(userId, courseID, moduleID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	attrs, ok := c.Locals("itemAttrs").(store.ItemAttrs)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if kind == courseModels.KindImage || kind == courseModels.KindFile {
		if err := blobAttrs(c, &attrs, true); err != nil {
			return blobErrorResponse(c, err)
		}
	}

	if kind == courseModels.KindVideo && config.AppConfig.LinkCheck {
		if !utils.CheckLink(attrs.URL) {
			return middleware.ValidationErrorResponse(c, map[string]string{"url": "URL is not reachable!"})
		}
	}

	item, content, err := st().CreateContentWithItem(module.ID, kind, userId, attrs, nil)
	if err != nil {
		return itemErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Content created successfully!", ContentView{
		ID:       content.ID,
		Position: content.Position,
		Item:     item.Render(),
	})
}

// AdminUpdateContent edits the item behind an existing content row. The
// row itself, position included, stays as it is.
func AdminUpdateContent(c *fiber.Ctx) error {
	userId, ok := principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	moduleID := c.Locals("moduleID").(int)
	kind := c.Locals("contentKind").(string)
	itemID := uint(c.Locals("itemID").(int))

	if _, err := ownedModule(userId, courseID, moduleID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	attrs, ok := c.Locals("itemAttrs").(store.ItemAttrs)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if kind == courseModels.KindImage || kind == courseModels.KindFile {
		if err := blobAttrs(c, &attrs, false); err != nil {
			return blobErrorResponse(c, err)
		}
		if attrs.FilePath == "" {
			// No new upload; keep the stored blob.
			existing, err := st().ResolveItem(kind, itemID)
			if err != nil {
				return itemErrorResponse(c, err)
			}
			switch it := existing.(type) {
			case *courseModels.ImageItem:
				attrs.FilePath = it.FilePath
			case *courseModels.FileItem:
				attrs.FilePath = it.FilePath
			}
		}
	}

	if kind == courseModels.KindVideo && config.AppConfig.LinkCheck {
		if !utils.CheckLink(attrs.URL) {
			return middleware.ValidationErrorResponse(c, map[string]string{"url": "URL is not reachable!"})
		}
	}

	item, err := st().CreateOrUpdateItem(kind, userId, attrs, &itemID)
	if err != nil {
		return itemErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content updated successfully!", item.Render())
}

// AdminDeleteContent removes a content row together with its item
func AdminDeleteContent(c *fiber.Ctx) error {
	userId, ok := principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	contentID := c.Locals("contentID").(int)

	// Scope through module and course before touching anything.
	var content courseModels.Content
	err := st().DB().Model(&courseModels.Content{}).
		Joins("JOIN modules ON modules.id = contents.module_id AND modules.deleted_at IS NULL").
		Joins("JOIN courses ON courses.id = modules.course_id AND courses.deleted_at IS NULL").
		Where("contents.id = ? AND courses.owner_id = ?", contentID, userId).
		First(&content).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	if err := st().DeleteContent(content.ID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content deleted successfully!", nil)
}

// AdminGetModuleContent lists a module's contents in display order, each
// with its rendered item
func AdminGetModuleContent(c *fiber.Ctx) error {
	userId, ok := principal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	moduleID := c.Locals("moduleID").(int)

	module, err := ownedModule(userId, courseID, moduleID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	views, err := renderContents(module.ID)
	if err != nil {
		log.Printf("Error rendering module %d contents: %v", module.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content fetched successfully!", views)
}

func renderContents(moduleID uint) ([]ContentView, error) {
	contents, err := st().ContentsByModule(moduleID)
	if err != nil {
		return nil, err
	}
	views := make([]ContentView, 0, len(contents))
	for _, cnt := range contents {
		item, err := st().ResolveItem(cnt.ItemKind, cnt.ItemID)
		if err != nil {
			return nil, err
		}
		views = append(views, ContentView{ID: cnt.ID, Position: cnt.Position, Item: item.Render()})
	}
	return views, nil
}
