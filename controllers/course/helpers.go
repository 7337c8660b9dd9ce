package controllers

import (
	"sync"

	"github.com/gofiber/fiber/v2"

	"cab/database"
	"cab/models/course"
	"cab/store"
)

var (
	storeOnce   sync.Once
	courseStore *store.Store
)

// st returns the shared store. The store keeps per-group locks, so every
// handler must go through the same instance.
func st() *store.Store {
	storeOnce.Do(func() {
		courseStore = store.New(database.Database.Db)
	})
	return courseStore
}

func principal(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals("userId").(uint)
	return userID, ok
}

// ownedCourse loads a course scoped to its owner. A course that exists
// but belongs to someone else reads the same as one that does not exist.
func ownedCourse(ownerID uint, courseID int) (*course.Course, error) {
	var crs course.Course
	err := database.Database.Db.
		Where("id = ? AND owner_id = ?", courseID, ownerID).
		First(&crs).Error
	if err != nil {
		return nil, err
	}
	return &crs, nil
}

// ownedModule loads a module after checking its course belongs to ownerID.
func ownedModule(ownerID uint, courseID, moduleID int) (*course.Module, error) {
	if _, err := ownedCourse(ownerID, courseID); err != nil {
		return nil, err
	}
	var mod course.Module
	err := database.Database.Db.
		Where("id = ? AND course_id = ?", moduleID, courseID).
		First(&mod).Error
	if err != nil {
		return nil, err
	}
	return &mod, nil
}
