package repository

import (
	"github.com/lshigami/Quokka/internal/model"
	"gorm.io/gorm"
)

type QuizAnswerRepository interface {
	CreateBatch(tx *gorm.DB, answers []model.QuizAnswer) error
	FindByAttemptID(attemptID uint) ([]model.QuizAnswer, error)
	CountByQuestionID(questionID uint) (int64, error)
}

type quizAnswerRepository struct {
	db *gorm.DB
}

func NewQuizAnswerRepository(db *gorm.DB) QuizAnswerRepository {
	return &quizAnswerRepository{db: db}
}

func (r *quizAnswerRepository) CreateBatch(tx *gorm.DB, answers []model.QuizAnswer) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(&answers).Error
}

func (r *quizAnswerRepository) FindByAttemptID(attemptID uint) ([]model.QuizAnswer, error) {
	var answers []model.QuizAnswer
	err := r.db.Preload("Question").Where("attempt_id = ?", attemptID).Find(&answers).Error
	return answers, err
}

func (r *quizAnswerRepository) CountByQuestionID(questionID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.QuizAnswer{}).Where("question_id = ?", questionID).Count(&count).Error
	return count, err
}
