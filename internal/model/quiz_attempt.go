package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Quiz types.
const (
	QuizTypeChapter  = "chapter"
	QuizTypeProgress = "progress"
)

// QuizAttempt is one instance of a student taking a quiz. QuestionIDs is
// fixed at creation and is the sole source of truth for grading; the client
// payload is never trusted for it. A non-nil CompletedAt makes the row
// terminal: it must never be updated again.
type QuizAttempt struct {
	ID             uint                      `gorm:"primarykey" json:"id"`
	StudentID      uuid.UUID                 `json:"student_id" gorm:"type:uuid;not null;index"`
	CourseID       uint                      `json:"course_id" gorm:"not null;index"`
	ExerciseID     uint                      `json:"exercise_id" gorm:"not null;index"`
	QuizType       string                    `json:"quiz_type" gorm:"not null"` // "chapter" or "progress"
	QuestionIDs    datatypes.JSONSlice[uint] `json:"question_ids" gorm:"not null"`
	TotalQuestions int                       `json:"total_questions" gorm:"not null"`
	PassingScore   int                       `json:"passing_score" gorm:"not null"`
	Score          int                       `json:"score" gorm:"not null;default:0"`
	Passed         bool                      `json:"passed" gorm:"not null;default:false"`
	StartedAt      time.Time                 `json:"started_at" gorm:"autoCreateTime"`
	CompletedAt    *time.Time                `json:"completed_at,omitempty"`
	Answers        []QuizAnswer              `json:"answers,omitempty" gorm:"foreignKey:AttemptID"`
	CreatedAt      time.Time                 `json:"created_at"`
	UpdatedAt      time.Time                 `json:"updated_at"`
}

// IsCompleted reports whether the attempt has reached its terminal state.
func (a *QuizAttempt) IsCompleted() bool {
	return a.CompletedAt != nil
}
