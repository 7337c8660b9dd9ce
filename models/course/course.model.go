package course

import "gorm.io/gorm"

// Subject is a catalog bucket courses hang off of
type Subject struct {
	gorm.Model
	Title string `json:"title" gorm:"not null"`
	Slug  string `json:"slug" gorm:"uniqueIndex;not null"`
}

// Course represents a learning course owned by an instructor
type Course struct {
	gorm.Model
	OwnerID   uint   `json:"owner_id" gorm:"index;not null"`
	SubjectID uint   `json:"subject_id" gorm:"index;not null"`
	Title     string `json:"title" gorm:"not null"`
	Slug      string `json:"slug" gorm:"index;not null"`
	Overview  string `json:"overview" gorm:"type:text"`

	Modules []Module `json:"modules,omitempty" gorm:"constraint:OnDelete:CASCADE;"`
}
