package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Note is a private study note, optionally pinned to an exercise.
type Note struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	StudentID  uuid.UUID      `json:"student_id" gorm:"type:uuid;not null;index"`
	CourseID   uint           `json:"course_id" gorm:"not null;index"`
	ExerciseID *uint          `json:"exercise_id,omitempty" gorm:"index"`
	Title      string         `json:"title" gorm:"not null"`
	Body       string         `json:"body" gorm:"type:text"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
