package dto

import "time"

type NoteCreateDTO struct {
	CourseID   uint   `json:"course_id" binding:"required"`
	ExerciseID *uint  `json:"exercise_id"`
	Title      string `json:"title" binding:"required"`
	Body       string `json:"body"`
}

type NoteUpdateDTO struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body"`
}

type NoteDTO struct {
	ID         uint      `json:"id"`
	CourseID   uint      `json:"course_id"`
	ExerciseID *uint     `json:"exercise_id,omitempty"`
	Title      string    `json:"title"`
	Body       string    `json:"body,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
