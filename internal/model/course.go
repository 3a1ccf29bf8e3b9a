package model

import (
	"time"

	"gorm.io/gorm"
)

type Course struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `json:"title" gorm:"not null;uniqueIndex"`
	Description string         `json:"description,omitempty"`
	Categories  []Category     `json:"categories,omitempty" gorm:"foreignKey:CourseID"`
	Exercises   []Exercise     `json:"exercises,omitempty" gorm:"foreignKey:CourseID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
