package repository

import (
	"github.com/lshigami/Quokka/internal/model"
	"gorm.io/gorm"
)

type ExerciseRepository interface {
	Create(exercise *model.Exercise) error
	FindByID(id uint) (*model.Exercise, error)
	FindByIDWithCategory(id uint) (*model.Exercise, error)
	FindByCourseID(courseID uint) ([]model.Exercise, error)
}

type exerciseRepository struct {
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) ExerciseRepository {
	return &exerciseRepository{db: db}
}

func (r *exerciseRepository) Create(exercise *model.Exercise) error {
	return r.db.Create(exercise).Error
}

func (r *exerciseRepository) FindByID(id uint) (*model.Exercise, error) {
	var exercise model.Exercise
	if err := r.db.First(&exercise, id).Error; err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *exerciseRepository) FindByIDWithCategory(id uint) (*model.Exercise, error) {
	var exercise model.Exercise
	if err := r.db.Preload("Category").First(&exercise, id).Error; err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *exerciseRepository) FindByCourseID(courseID uint) ([]model.Exercise, error) {
	var exercises []model.Exercise
	if err := r.db.Where("course_id = ?", courseID).Order("created_at ASC").Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}
