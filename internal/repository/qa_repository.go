package repository

import (
	"github.com/google/uuid"
	"github.com/lshigami/Quokka/internal/model"
	"gorm.io/gorm"
)

type QAQuestionRepository interface {
	Create(question *model.QAQuestion) error
	FindByID(id uint) (*model.QAQuestion, error)
	FindByIDWithAnswers(id uint) (*model.QAQuestion, error)
	FindApprovedByCourse(courseID uint) ([]model.QAQuestion, error)
	FindPending() ([]model.QAQuestion, error)
	UpdateStatus(id uint, status string) error
	SetAcceptedAnswer(questionID, answerID uint) error
}

type qaQuestionRepository struct {
	db *gorm.DB
}

func NewQAQuestionRepository(db *gorm.DB) QAQuestionRepository {
	return &qaQuestionRepository{db: db}
}

func (r *qaQuestionRepository) Create(question *model.QAQuestion) error {
	return r.db.Create(question).Error
}

func (r *qaQuestionRepository) FindByID(id uint) (*model.QAQuestion, error) {
	var question model.QAQuestion
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *qaQuestionRepository) FindByIDWithAnswers(id uint) (*model.QAQuestion, error) {
	var question model.QAQuestion
	err := r.db.Preload("Answers", "status = ?", model.ModerationApproved).
		First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *qaQuestionRepository) FindApprovedByCourse(courseID uint) ([]model.QAQuestion, error) {
	var questions []model.QAQuestion
	err := r.db.
		Preload("Answers", "status = ?", model.ModerationApproved).
		Where("course_id = ? AND status = ?", courseID, model.ModerationApproved).
		Order("created_at DESC").
		Find(&questions).Error
	return questions, err
}

func (r *qaQuestionRepository) FindPending() ([]model.QAQuestion, error) {
	var questions []model.QAQuestion
	err := r.db.Where("status = ?", model.ModerationPending).
		Order("created_at ASC").
		Find(&questions).Error
	return questions, err
}

func (r *qaQuestionRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&model.QAQuestion{}).Where("id = ?", id).
		Update("status", status).Error
}

func (r *qaQuestionRepository) SetAcceptedAnswer(questionID, answerID uint) error {
	return r.db.Model(&model.QAQuestion{}).Where("id = ?", questionID).
		Update("accepted_answer_id", answerID).Error
}

type QAAnswerRepository interface {
	Create(answer *model.QAAnswer) error
	FindByID(id uint) (*model.QAAnswer, error)
	UpdateStatus(id uint, status string) error
}

type qaAnswerRepository struct {
	db *gorm.DB
}

func NewQAAnswerRepository(db *gorm.DB) QAAnswerRepository {
	return &qaAnswerRepository{db: db}
}

func (r *qaAnswerRepository) Create(answer *model.QAAnswer) error {
	return r.db.Create(answer).Error
}

func (r *qaAnswerRepository) FindByID(id uint) (*model.QAAnswer, error) {
	var answer model.QAAnswer
	if err := r.db.First(&answer, id).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *qaAnswerRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&model.QAAnswer{}).Where("id = ?", id).
		Update("status", status).Error
}

type QAVoteRepository interface {
	FindByQuestionAndUser(questionID uint, userID uuid.UUID) (*model.QAVote, error)
}

type qaVoteRepository struct {
	db *gorm.DB
}

func NewQAVoteRepository(db *gorm.DB) QAVoteRepository {
	return &qaVoteRepository{db: db}
}

func (r *qaVoteRepository) FindByQuestionAndUser(questionID uint, userID uuid.UUID) (*model.QAVote, error) {
	var vote model.QAVote
	err := r.db.Where("question_id = ? AND user_id = ?", questionID, userID).First(&vote).Error
	if err != nil {
		return nil, err
	}
	return &vote, nil
}
