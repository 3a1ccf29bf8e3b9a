package model

import (
	"time"

	"gorm.io/gorm"
)

// Answer letters for multiple-choice questions and votes cast on Q&A posts.
const (
	AnswerA = "a"
	AnswerB = "b"
	AnswerC = "c"
	AnswerD = "d"
)

// QuizQuestion is a multiple-choice question in the bank. It is tagged with
// a course and optionally scoped to a chapter and/or a single exercise.
// Once any QuizAnswer references it the question is immutable.
type QuizQuestion struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	CourseID      uint           `json:"course_id" gorm:"not null;index"`
	CategoryID    *uint          `json:"category_id,omitempty" gorm:"index"`
	ExerciseID    *uint          `json:"exercise_id,omitempty" gorm:"index"`
	QuestionText  string         `json:"question_text" gorm:"type:text;not null"`
	OptionA       string         `json:"option_a" gorm:"not null"`
	OptionB       string         `json:"option_b" gorm:"not null"`
	OptionC       string         `json:"option_c" gorm:"not null"`
	OptionD       string         `json:"option_d" gorm:"not null"`
	CorrectAnswer string         `json:"correct_answer" gorm:"not null"` // "a".."d"
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
