package dto

import "time"

type CourseCreateDTO struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type CategoryCreateDTO struct {
	CourseID   uint   `json:"course_id" binding:"required"`
	Title      string `json:"title" binding:"required"`
	OrderIndex int    `json:"order_index" binding:"required,min=1"`
}

type ExerciseCreateDTO struct {
	CourseID         uint   `json:"course_id" binding:"required"`
	CategoryID       uint   `json:"category_id" binding:"required"`
	Title            string `json:"title" binding:"required"`
	Description      string `json:"description"`
	QuestionCountMin int    `json:"question_count_min" binding:"required,min=1"`
	QuestionCountMax int    `json:"question_count_max" binding:"required,min=1,gtefield=QuestionCountMin"`
	PassingScore     int    `json:"passing_score" binding:"required,min=0,max=100"`
}

type CourseDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type CategoryDTO struct {
	ID         uint   `json:"id"`
	CourseID   uint   `json:"course_id"`
	Title      string `json:"title"`
	OrderIndex int    `json:"order_index"`
}

type ExerciseDTO struct {
	ID               uint   `json:"id"`
	CourseID         uint   `json:"course_id"`
	CategoryID       uint   `json:"category_id"`
	Title            string `json:"title"`
	Description      string `json:"description,omitempty"`
	QuestionCountMin int    `json:"question_count_min"`
	QuestionCountMax int    `json:"question_count_max"`
	PassingScore     int    `json:"passing_score"`
}
