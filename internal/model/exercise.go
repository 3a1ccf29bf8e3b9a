package model

import (
	"time"

	"gorm.io/gorm"
)

// Exercise carries the quiz configuration for attempts spawned from it:
// how many questions to draw and the pass threshold in percent.
type Exercise struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	CourseID         uint           `json:"course_id" gorm:"not null;index"`
	CategoryID       uint           `json:"category_id" gorm:"not null;index"`
	Category         Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Title            string         `json:"title" gorm:"not null"`
	Description      string         `json:"description,omitempty"`
	QuestionCountMin int            `json:"question_count_min" gorm:"not null;default:5"`
	QuestionCountMax int            `json:"question_count_max" gorm:"not null;default:10"`
	PassingScore     int            `json:"passing_score" gorm:"not null;default:60"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
