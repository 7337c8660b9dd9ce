package course

import "gorm.io/gorm"

// Content is a row in a module's ordered list. It does not hold the
// payload itself; ItemKind plus ItemID reference exactly one item record
// (text, video, image or file), and the content row owns that reference:
// deleting the content row deletes the item with it.
type Content struct {
	gorm.Model
	ModuleID uint   `json:"module_id" gorm:"index;not null"`
	Position int    `json:"position" gorm:"index;not null;default:0"`
	ItemKind string `json:"item_kind" gorm:"not null"`
	ItemID   uint   `json:"item_id" gorm:"not null"`
}
