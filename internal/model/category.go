package model

import (
	"time"

	"gorm.io/gorm"
)

// Category is a chapter within a course. OrderIndex defines the chapter
// sequence used to scope cumulative "progress" quizzes.
type Category struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	CourseID   uint           `json:"course_id" gorm:"not null;index"`
	Title      string         `json:"title" gorm:"not null"`
	OrderIndex int            `json:"order_index" gorm:"not null"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
