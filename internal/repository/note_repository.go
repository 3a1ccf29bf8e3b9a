package repository

import (
	"github.com/google/uuid"
	"github.com/lshigami/Quokka/internal/model"
	"gorm.io/gorm"
)

type NoteRepository interface {
	Create(note *model.Note) error
	FindByID(id uint) (*model.Note, error)
	FindAllByStudent(studentID uuid.UUID, courseID *uint) ([]model.Note, error)
	Update(note *model.Note) error
	Delete(id uint) error
}

type noteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(note *model.Note) error {
	return r.db.Create(note).Error
}

func (r *noteRepository) FindByID(id uint) (*model.Note, error) {
	var note model.Note
	if err := r.db.First(&note, id).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *noteRepository) FindAllByStudent(studentID uuid.UUID, courseID *uint) ([]model.Note, error) {
	query := r.db.Where("student_id = ?", studentID)
	if courseID != nil {
		query = query.Where("course_id = ?", *courseID)
	}
	var notes []model.Note
	if err := query.Order("updated_at desc").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *noteRepository) Update(note *model.Note) error {
	return r.db.Save(note).Error
}

func (r *noteRepository) Delete(id uint) error {
	return r.db.Delete(&model.Note{}, id).Error
}
