package dto

import (
	"time"

	"github.com/google/uuid"
)

// GenerateQuizDTO starts a new attempt for an exercise.
type GenerateQuizDTO struct {
	QuizType string `json:"quiz_type" binding:"required,oneof=chapter progress"`
}

// QuizQuestionDTO is a question as shown to a student mid-attempt: the
// correct answer is stripped.
type QuizQuestionDTO struct {
	ID           uint   `json:"id"`
	QuestionText string `json:"question_text"`
	OptionA      string `json:"option_a"`
	OptionB      string `json:"option_b"`
	OptionC      string `json:"option_c"`
	OptionD      string `json:"option_d"`
}

// QuizAttemptDTO summarizes an attempt row.
type QuizAttemptDTO struct {
	ID             uint       `json:"id"`
	StudentID      uuid.UUID  `json:"student_id"`
	CourseID       uint       `json:"course_id"`
	ExerciseID     uint       `json:"exercise_id"`
	QuizType       string     `json:"quiz_type"`
	TotalQuestions int        `json:"total_questions"`
	PassingScore   int        `json:"passing_score"`
	Score          int        `json:"score"`
	Percentage     *int       `json:"percentage,omitempty"`
	Passed         bool       `json:"passed"`
	StartedAt      time.Time  `json:"started_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

// GeneratedQuizDTO is the response to quiz generation and retake: the new
// attempt plus its questions in display order.
type GeneratedQuizDTO struct {
	Attempt   QuizAttemptDTO    `json:"attempt"`
	Questions []QuizQuestionDTO `json:"questions"`
}

// QuizAnswerSubmitDTO is one answer within a submission batch.
type QuizAnswerSubmitDTO struct {
	QuestionID     uint   `json:"question_id" binding:"required"`
	SelectedAnswer string `json:"selected_answer" binding:"required,oneof=a b c d"`
}

// QuizSubmitDTO is the full submission for an attempt. Partial submissions
// are rejected, so the batch must cover every question exactly once.
type QuizSubmitDTO struct {
	Answers []QuizAnswerSubmitDTO `json:"answers" binding:"required,min=1,dive"`
}

// AnswerReviewDTO is per-question correctness for review rendering.
type AnswerReviewDTO struct {
	QuestionID     uint   `json:"question_id"`
	QuestionText   string `json:"question_text"`
	SelectedAnswer string `json:"selected_answer"`
	CorrectAnswer  string `json:"correct_answer"`
	IsCorrect      bool   `json:"is_correct"`
}

// GradedAttemptDTO is the response to a successful submission, and the
// review payload for a completed attempt.
type GradedAttemptDTO struct {
	Attempt QuizAttemptDTO    `json:"attempt"`
	Review  []AnswerReviewDTO `json:"review,omitempty"`
}
