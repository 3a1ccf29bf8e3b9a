package model

import "time"

// QuizAnswer is one graded answer within an attempt. Exactly one row may
// exist per (attempt_id, question_id) pair.
type QuizAnswer struct {
	ID             uint         `gorm:"primarykey" json:"id"`
	AttemptID      uint         `json:"attempt_id" gorm:"not null;index;uniqueIndex:idx_attempt_question"`
	QuestionID     uint         `json:"question_id" gorm:"not null;index;uniqueIndex:idx_attempt_question"`
	Question       QuizQuestion `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	SelectedAnswer string       `json:"selected_answer" gorm:"not null"` // "a".."d"
	IsCorrect      bool         `json:"is_correct" gorm:"not null"`
	AnsweredAt     time.Time    `json:"answered_at" gorm:"autoCreateTime"`
}
