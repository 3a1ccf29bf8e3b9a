package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Moderation states shared by Q&A questions and answers.
const (
	ModerationPending  = "pending"
	ModerationApproved = "approved"
	ModerationRejected = "rejected"
)

// Vote types.
const (
	VoteUp   = "up"
	VoteDown = "down"
)

// QAQuestion is a student question in the course Q&A area. Vote counters
// are only ever moved inside the vote transaction, one step at a time.
type QAQuestion struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	CourseID         uint           `json:"course_id" gorm:"not null;index"`
	StudentID        uuid.UUID      `json:"student_id" gorm:"type:uuid;not null;index"`
	Title            string         `json:"title" gorm:"not null"`
	Body             string         `json:"body" gorm:"type:text;not null"`
	Status           string         `json:"status" gorm:"not null;default:'pending'"`
	Upvotes          int            `json:"upvotes" gorm:"not null;default:0"`
	Downvotes        int            `json:"downvotes" gorm:"not null;default:0"`
	AcceptedAnswerID *uint          `json:"accepted_answer_id,omitempty"`
	Answers          []QAAnswer     `json:"answers,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

type QAAnswer struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	QuestionID uint           `json:"question_id" gorm:"not null;index"`
	StudentID  uuid.UUID      `json:"student_id" gorm:"type:uuid;not null;index"`
	Body       string         `json:"body" gorm:"type:text;not null"`
	Status     string         `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// QAVote is the single vote a user holds on a question. Casting the same
// type again deletes the row; casting the opposite type flips VoteType.
type QAVote struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	QuestionID uint      `json:"question_id" gorm:"not null;uniqueIndex:idx_question_user"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_question_user"`
	VoteType   string    `json:"vote_type" gorm:"not null"` // "up" or "down"
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
