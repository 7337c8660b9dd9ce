package store

import (
	"fmt"

	"gorm.io/gorm"

	"cab/models/course"
)

// nextPosition computes the default position for a new row in the sibling
// group selected by cond: one past the current maximum, or 0 when the
// group has no members. An empty group is a normal case, not an error.
func nextPosition(tx *gorm.DB, model interface{}, cond string, args ...interface{}) (int, error) {
	var next int
	err := tx.Model(model).Where(cond, args...).
		Select("COALESCE(MAX(position), -1) + 1").Scan(&next).Error
	return next, err
}

// CreateModule inserts mod into its course's module list. When position is
// nil the module is appended (max+1, or 0 in an empty course); an explicit
// position, including 0, is taken as-is.
func (s *Store) CreateModule(mod *course.Module, position *int) error {
	unlock := s.lockGroup(fmt.Sprintf("course:%d", mod.CourseID))
	defer unlock()

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&course.Course{}, mod.CourseID).Error; err != nil {
			return notFound(err)
		}
		if position != nil {
			mod.Position = *position
		} else {
			pos, err := nextPosition(tx, &course.Module{}, "course_id = ?", mod.CourseID)
			if err != nil {
				return err
			}
			mod.Position = pos
		}
		return tx.Create(mod).Error
	})
}

func insertContent(tx *gorm.DB, cnt *course.Content, position *int) error {
	if err := tx.First(&course.Module{}, cnt.ModuleID).Error; err != nil {
		return notFound(err)
	}
	if position != nil {
		cnt.Position = *position
	} else {
		pos, err := nextPosition(tx, &course.Content{}, "module_id = ?", cnt.ModuleID)
		if err != nil {
			return err
		}
		cnt.Position = pos
	}
	return tx.Create(cnt).Error
}

// CreateContent inserts cnt into its module's content list, with the same
// position rules as CreateModule.
func (s *Store) CreateContent(cnt *course.Content, position *int) error {
	unlock := s.lockGroup(fmt.Sprintf("module:%d", cnt.ModuleID))
	defer unlock()

	return s.db.Transaction(func(tx *gorm.DB) error {
		return insertContent(tx, cnt, position)
	})
}

// CreateContentWithItem creates a new item and the content row referencing
// it as one unit of work. A failure on either side leaves neither behind,
// so no item row can exist without a content row pointing at it.
func (s *Store) CreateContentWithItem(moduleID uint, kind string, ownerID uint, attrs ItemAttrs, position *int) (course.Item, *course.Content, error) {
	if !course.IsAllowedKind(kind) {
		return nil, nil, ErrInvalidKind
	}
	if err := checkAttrs(kind, attrs); err != nil {
		return nil, nil, err
	}

	unlock := s.lockGroup(fmt.Sprintf("module:%d", moduleID))
	defer unlock()

	var item course.Item
	cnt := &course.Content{ModuleID: moduleID, ItemKind: kind}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		it, err := createItem(tx, kind, ownerID, attrs)
		if err != nil {
			return err
		}
		item = it
		cnt.ItemID = it.ItemID()
		return insertContent(tx, cnt, position)
	})
	if err != nil {
		return nil, nil, err
	}
	return item, cnt, nil
}

// ModulesByCourse lists a course's modules in display order. Positions may
// repeat after manual reordering, so ties break on id to keep the result
// stable across calls.
func (s *Store) ModulesByCourse(courseID uint) ([]course.Module, error) {
	var mods []course.Module
	err := s.db.Where("course_id = ?", courseID).
		Order("position asc, id asc").Find(&mods).Error
	return mods, err
}

// ContentsByModule lists a module's contents in display order.
func (s *Store) ContentsByModule(moduleID uint) ([]course.Content, error) {
	var cnts []course.Content
	err := s.db.Where("module_id = ?", moduleID).
		Order("position asc, id asc").Find(&cnts).Error
	return cnts, err
}

// setPositions writes each id's new position. Ids that match no row are
// skipped, not errors; ownership filtering happens before this runs.
func setPositions(tx *gorm.DB, model interface{}, updates map[uint]int) (int, error) {
	applied := 0
	for id, pos := range updates {
		res := tx.Model(model).Where("id = ?", id).Update("position", pos)
		if res.Error != nil {
			return 0, res.Error
		}
		applied += int(res.RowsAffected)
	}
	return applied, nil
}

// SetModulePositions applies a position batch to modules with no ownership
// scoping. Reorder endpoints go through ReorderModules instead; this is
// for callers that already hold a vetted batch.
func (s *Store) SetModulePositions(updates map[uint]int) (int, error) {
	var applied int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		n, err := setPositions(tx, &course.Module{}, updates)
		applied = n
		return err
	})
	if err != nil {
		return 0, err
	}
	return applied, nil
}

// SetContentPositions is SetModulePositions for content rows.
func (s *Store) SetContentPositions(updates map[uint]int) (int, error) {
	var applied int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		n, err := setPositions(tx, &course.Content{}, updates)
		applied = n
		return err
	})
	if err != nil {
		return 0, err
	}
	return applied, nil
}

func deleteItem(tx *gorm.DB, kind string, id uint) error {
	switch kind {
	case course.KindText:
		return tx.Delete(&course.TextItem{}, id).Error
	case course.KindVideo:
		return tx.Delete(&course.VideoItem{}, id).Error
	case course.KindImage:
		return tx.Delete(&course.ImageItem{}, id).Error
	case course.KindFile:
		return tx.Delete(&course.FileItem{}, id).Error
	}
	return ErrInvalidKind
}

func deleteContent(tx *gorm.DB, cnt *course.Content) error {
	if err := deleteItem(tx, cnt.ItemKind, cnt.ItemID); err != nil {
		return err
	}
	return tx.Delete(cnt).Error
}

// DeleteContent removes a content row and the item it references in one
// unit of work, so no orphaned item stays behind.
func (s *Store) DeleteContent(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var cnt course.Content
		if err := tx.First(&cnt, id).Error; err != nil {
			return notFound(err)
		}
		return deleteContent(tx, &cnt)
	})
}

func deleteModule(tx *gorm.DB, mod *course.Module) error {
	var cnts []course.Content
	if err := tx.Where("module_id = ?", mod.ID).Find(&cnts).Error; err != nil {
		return err
	}
	for i := range cnts {
		if err := deleteContent(tx, &cnts[i]); err != nil {
			return err
		}
	}
	return tx.Delete(mod).Error
}

// DeleteModule removes a module and cascades through its contents and
// their items.
func (s *Store) DeleteModule(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var mod course.Module
		if err := tx.First(&mod, id).Error; err != nil {
			return notFound(err)
		}
		return deleteModule(tx, &mod)
	})
}

// DeleteCourse removes a course, its modules, their contents and items,
// and any enrollments.
func (s *Store) DeleteCourse(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var crs course.Course
		if err := tx.First(&crs, id).Error; err != nil {
			return notFound(err)
		}
		var mods []course.Module
		if err := tx.Where("course_id = ?", id).Find(&mods).Error; err != nil {
			return err
		}
		for i := range mods {
			if err := deleteModule(tx, &mods[i]); err != nil {
				return err
			}
		}
		if err := tx.Where("course_id = ?", id).Delete(&course.Enrollment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&crs).Error
	})
}
