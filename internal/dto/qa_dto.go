package dto

import (
	"time"

	"github.com/google/uuid"
)

type QAQuestionCreateDTO struct {
	CourseID uint   `json:"course_id" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Body     string `json:"body" binding:"required"`
}

type QAAnswerCreateDTO struct {
	Body string `json:"body" binding:"required"`
}

// ModerateDTO approves or rejects a pending Q&A question or answer.
type ModerateDTO struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

type CastVoteDTO struct {
	VoteType string `json:"vote_type" binding:"required,oneof=up down"`
}

type QAAnswerDTO struct {
	ID         uint      `json:"id"`
	QuestionID uint      `json:"question_id"`
	StudentID  uuid.UUID `json:"student_id"`
	Body       string    `json:"body"`
	Status     string    `json:"status"`
	Accepted   bool      `json:"accepted"`
	CreatedAt  time.Time `json:"created_at"`
}

type QAQuestionDTO struct {
	ID               uint          `json:"id"`
	CourseID         uint          `json:"course_id"`
	StudentID        uuid.UUID     `json:"student_id"`
	Title            string        `json:"title"`
	Body             string        `json:"body"`
	Status           string        `json:"status"`
	Upvotes          int           `json:"upvotes"`
	Downvotes        int           `json:"downvotes"`
	AcceptedAnswerID *uint         `json:"accepted_answer_id,omitempty"`
	Answers          []QAAnswerDTO `json:"answers,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
}

// VoteResultDTO is the state of a question's counters after a vote call,
// plus the caller's remaining vote ("" when the vote was retracted).
type VoteResultDTO struct {
	QuestionID uint   `json:"question_id"`
	Upvotes    int    `json:"upvotes"`
	Downvotes  int    `json:"downvotes"`
	UserVote   string `json:"user_vote"`
}
