package dto

import "time"

// QuestionCreateDTO is for admins adding a question to the bank.
type QuestionCreateDTO struct {
	CourseID      uint   `json:"course_id" binding:"required"`
	CategoryID    *uint  `json:"category_id"`
	ExerciseID    *uint  `json:"exercise_id"`
	QuestionText  string `json:"question_text" binding:"required"`
	OptionA       string `json:"option_a" binding:"required"`
	OptionB       string `json:"option_b" binding:"required"`
	OptionC       string `json:"option_c" binding:"required"`
	OptionD       string `json:"option_d" binding:"required"`
	CorrectAnswer string `json:"correct_answer" binding:"required,oneof=a b c d"`
}

// QuestionUpdateDTO carries the editable fields of a bank question.
type QuestionUpdateDTO struct {
	QuestionText  string `json:"question_text" binding:"required"`
	OptionA       string `json:"option_a" binding:"required"`
	OptionB       string `json:"option_b" binding:"required"`
	OptionC       string `json:"option_c" binding:"required"`
	OptionD       string `json:"option_d" binding:"required"`
	CorrectAnswer string `json:"correct_answer" binding:"required,oneof=a b c d"`
}

// QuestionBankItemDTO is the admin view of a question, answer key included.
type QuestionBankItemDTO struct {
	ID            uint      `json:"id"`
	CourseID      uint      `json:"course_id"`
	CategoryID    *uint     `json:"category_id,omitempty"`
	ExerciseID    *uint     `json:"exercise_id,omitempty"`
	QuestionText  string    `json:"question_text"`
	OptionA       string    `json:"option_a"`
	OptionB       string    `json:"option_b"`
	OptionC       string    `json:"option_c"`
	OptionD       string    `json:"option_d"`
	CorrectAnswer string    `json:"correct_answer"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// QuestionDraftDTO is an AI-drafted question returned for human review; it
// is never written to the bank directly.
type QuestionDraftDTO struct {
	QuestionText  string `json:"question_text"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectAnswer string `json:"correct_answer"`
}

// DraftQuestionsDTO asks the drafting service for question candidates.
type DraftQuestionsDTO struct {
	Topic string `json:"topic" binding:"required"`
	Count int    `json:"count" binding:"required,min=1,max=10"`
}
