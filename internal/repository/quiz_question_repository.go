package repository

import (
	"github.com/lshigami/Quokka/internal/model"
	"gorm.io/gorm"
)

// QuestionFilter narrows admin listings of the bank.
type QuestionFilter struct {
	CourseID   *uint
	CategoryID *uint
	ExerciseID *uint
}

type QuizQuestionRepository interface {
	Create(question *model.QuizQuestion) error
	FindByID(id uint) (*model.QuizQuestion, error)
	FindByIDs(ids []uint) ([]model.QuizQuestion, error)
	FindAll(filter QuestionFilter) ([]model.QuizQuestion, error)
	// FindEligibleForChapter returns the bank questions a chapter quiz for
	// the exercise may draw from: questions tagged with the exercise itself
	// or with its chapter.
	FindEligibleForChapter(courseID, categoryID, exerciseID uint) ([]model.QuizQuestion, error)
	// FindEligibleForProgress additionally includes every chapter whose
	// order index is at or before the exercise's chapter.
	FindEligibleForProgress(courseID uint, maxOrderIndex int, exerciseID uint) ([]model.QuizQuestion, error)
	Update(question *model.QuizQuestion) error
	Delete(id uint) error
}

type quizQuestionRepository struct {
	db *gorm.DB
}

func NewQuizQuestionRepository(db *gorm.DB) QuizQuestionRepository {
	return &quizQuestionRepository{db: db}
}

func (r *quizQuestionRepository) Create(question *model.QuizQuestion) error {
	return r.db.Create(question).Error
}

func (r *quizQuestionRepository) FindByID(id uint) (*model.QuizQuestion, error) {
	var question model.QuizQuestion
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *quizQuestionRepository) FindByIDs(ids []uint) ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	if err := r.db.Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *quizQuestionRepository) FindAll(filter QuestionFilter) ([]model.QuizQuestion, error) {
	query := r.db.Model(&model.QuizQuestion{})
	if filter.CourseID != nil {
		query = query.Where("course_id = ?", *filter.CourseID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.ExerciseID != nil {
		query = query.Where("exercise_id = ?", *filter.ExerciseID)
	}
	var questions []model.QuizQuestion
	if err := query.Order("created_at desc").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *quizQuestionRepository) FindEligibleForChapter(courseID, categoryID, exerciseID uint) ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	err := r.db.
		Where("course_id = ?", courseID).
		Where("exercise_id = ? OR category_id = ?", exerciseID, categoryID).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *quizQuestionRepository) FindEligibleForProgress(courseID uint, maxOrderIndex int, exerciseID uint) ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	err := r.db.
		Where("course_id = ?", courseID).
		Where("exercise_id = ? OR category_id IN (?)",
			exerciseID,
			r.db.Model(&model.Category{}).Select("id").
				Where("course_id = ? AND order_index <= ?", courseID, maxOrderIndex),
		).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *quizQuestionRepository) Update(question *model.QuizQuestion) error {
	return r.db.Save(question).Error
}

func (r *quizQuestionRepository) Delete(id uint) error {
	return r.db.Delete(&model.QuizQuestion{}, id).Error
}
