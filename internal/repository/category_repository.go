package repository

import (
	"github.com/lshigami/Quokka/internal/model"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.Category) error
	FindByID(id uint) (*model.Category, error)
	FindByCourseID(courseID uint) ([]model.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) FindByID(id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindByCourseID(courseID uint) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.Where("course_id = ?", courseID).Order("order_index ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
