package course

import "gorm.io/gorm"

// Enrollment links a student to a course they joined
type Enrollment struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"index;not null;uniqueIndex:idx_enroll_user_course"`
	CourseID uint   `json:"course_id" gorm:"index;not null;uniqueIndex:idx_enroll_user_course"`
	Status   string `json:"status" gorm:"default:'ENROLLED'"`
}
