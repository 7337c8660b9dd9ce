package course

import "gorm.io/gorm"

// Module represents a section within a course. Position is the display
// order among siblings of the same course; it is assigned by the store
// when the caller does not supply one.
type Module struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	Position    int    `json:"position" gorm:"index;not null;default:0"`
}
