package store

import (
	"gorm.io/gorm"

	"cab/models/course"
)

// ReorderModules applies a batch of module-id → position updates on behalf
// of ownerID. Ids whose course the caller does not own are dropped without
// comment; the applied count is the only signal. The retained subset goes
// through one transaction, so a failure partway leaves every position as
// it was.
func (s *Store) ReorderModules(ownerID uint, updates map[uint]int) (int, error) {
	ids := idsOf(updates)
	if len(ids) == 0 {
		return 0, nil
	}

	var applied int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var owned []uint
		err := tx.Model(&course.Module{}).
			Joins("JOIN courses ON courses.id = modules.course_id AND courses.deleted_at IS NULL").
			Where("modules.id IN ? AND courses.owner_id = ?", ids, ownerID).
			Order("modules.id").
			Pluck("modules.id", &owned).Error
		if err != nil {
			return err
		}
		for _, id := range owned {
			res := tx.Model(&course.Module{}).Where("id = ?", id).
				Update("position", updates[id])
			if res.Error != nil {
				return res.Error
			}
			applied += int(res.RowsAffected)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return applied, nil
}

// ReorderContents is ReorderModules one level down: content ids are kept
// only when their module's course belongs to ownerID.
func (s *Store) ReorderContents(ownerID uint, updates map[uint]int) (int, error) {
	ids := idsOf(updates)
	if len(ids) == 0 {
		return 0, nil
	}

	var applied int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var owned []uint
		err := tx.Model(&course.Content{}).
			Joins("JOIN modules ON modules.id = contents.module_id AND modules.deleted_at IS NULL").
			Joins("JOIN courses ON courses.id = modules.course_id AND courses.deleted_at IS NULL").
			Where("contents.id IN ? AND courses.owner_id = ?", ids, ownerID).
			Order("contents.id").
			Pluck("contents.id", &owned).Error
		if err != nil {
			return err
		}
		for _, id := range owned {
			res := tx.Model(&course.Content{}).Where("id = ?", id).
				Update("position", updates[id])
			if res.Error != nil {
				return res.Error
			}
			applied += int(res.RowsAffected)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return applied, nil
}

func idsOf(updates map[uint]int) []uint {
	ids := make([]uint, 0, len(updates))
	for id := range updates {
		ids = append(ids, id)
	}
	return ids
}
