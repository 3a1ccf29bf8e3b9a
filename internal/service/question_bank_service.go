package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/lshigami/Quokka/internal/repository"
	"github.com/rs/zerolog/log"
)

// QuestionBankService is the admin CRUD surface over bank questions.
// Questions referenced by graded answers are frozen: neither edits nor
// deletion may invalidate an existing attempt's review.
type QuestionBankService interface {
	CreateQuestion(req dto.QuestionCreateDTO) (*dto.QuestionBankItemDTO, error)
	UpdateQuestion(id uint, req dto.QuestionUpdateDTO) (*dto.QuestionBankItemDTO, error)
	ListQuestions(filter repository.QuestionFilter) ([]dto.QuestionBankItemDTO, error)
	DeleteQuestion(id uint) error
}

type questionBankService struct {
	questionRepo repository.QuizQuestionRepository
	answerRepo   repository.QuizAnswerRepository
	courseRepo   repository.CourseRepository
}

func NewQuestionBankService(
	questionRepo repository.QuizQuestionRepository,
	answerRepo repository.QuizAnswerRepository,
	courseRepo repository.CourseRepository,
) QuestionBankService {
	return &questionBankService{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		courseRepo:   courseRepo,
	}
}

func (s *questionBankService) CreateQuestion(req dto.QuestionCreateDTO) (*dto.QuestionBankItemDTO, error) {
	if _, err := s.courseRepo.FindByID(req.CourseID); err != nil {
		return nil, fmt.Errorf("course not found with ID %d: %w", req.CourseID, err)
	}

	var question model.QuizQuestion
	if err := copier.Copy(&question, &req); err != nil {
		return nil, fmt.Errorf("error preparing question model: %w", err)
	}
	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Uint("courseID", req.CourseID).Msg("CreateQuestion: database error")
		return nil, fmt.Errorf("database error creating question: %w", err)
	}
	return toQuestionBankItemDTO(&question)
}

func (s *questionBankService) UpdateQuestion(id uint, req dto.QuestionUpdateDTO) (*dto.QuestionBankItemDTO, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("question not found with ID %d: %w", id, err)
	}
	if err := s.ensureUnreferenced(id); err != nil {
		return nil, err
	}

	question.QuestionText = req.QuestionText
	question.OptionA = req.OptionA
	question.OptionB = req.OptionB
	question.OptionC = req.OptionC
	question.OptionD = req.OptionD
	question.CorrectAnswer = req.CorrectAnswer
	if err := s.questionRepo.Update(question); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("UpdateQuestion: database error")
		return nil, fmt.Errorf("database error updating question %d: %w", id, err)
	}
	return toQuestionBankItemDTO(question)
}

func (s *questionBankService) ListQuestions(filter repository.QuestionFilter) ([]dto.QuestionBankItemDTO, error) {
	questions, err := s.questionRepo.FindAll(filter)
	if err != nil {
		log.Error().Err(err).Msg("ListQuestions: repository error")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}
	dtos := make([]dto.QuestionBankItemDTO, 0, len(questions))
	for _, q := range questions {
		item, err := toQuestionBankItemDTO(&q)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, *item)
	}
	return dtos, nil
}

func (s *questionBankService) DeleteQuestion(id uint) error {
	if _, err := s.questionRepo.FindByID(id); err != nil {
		return fmt.Errorf("question not found with ID %d: %w", id, err)
	}
	if err := s.ensureUnreferenced(id); err != nil {
		return err
	}
	if err := s.questionRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("DeleteQuestion: database error")
		return fmt.Errorf("database error deleting question %d: %w", id, err)
	}
	return nil
}

func (s *questionBankService) ensureUnreferenced(questionID uint) error {
	count, err := s.answerRepo.CountByQuestionID(questionID)
	if err != nil {
		return fmt.Errorf("error checking answers for question %d: %w", questionID, err)
	}
	if count > 0 {
		return fmt.Errorf("question %d: %w", questionID, ErrQuestionReferenced)
	}
	return nil
}

func toQuestionBankItemDTO(question *model.QuizQuestion) (*dto.QuestionBankItemDTO, error) {
	var item dto.QuestionBankItemDTO
	if err := copier.Copy(&item, question); err != nil {
		return nil, fmt.Errorf("error preparing question response: %w", err)
	}
	return &item, nil
}
