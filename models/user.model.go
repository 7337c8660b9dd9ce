package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name                string `gorm:"default:''"`
	Email               string `gorm:"unique;not null"`
	Mobile              string `gorm:"default:''"`
	Role                string `gorm:"default:'INSTRUCTOR'"` // INSTRUCTOR, STUDENT, ADMIN
	Password            string `gorm:"not null"`
	IsEmailVerified     bool   `gorm:"default:false"`
	FailedLoginAttempts int    `gorm:"default:0"`
	LastLogin           *time.Time
}
