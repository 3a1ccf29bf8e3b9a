package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/lshigami/Quokka/internal/repository"
	"github.com/rs/zerolog/log"
)

// QAService covers asking, answering, moderating, and accepting answers in
// the course Q&A area. New posts start pending and only show up in course
// listings once approved.
type QAService interface {
	AskQuestion(studentID uuid.UUID, req dto.QAQuestionCreateDTO) (*dto.QAQuestionDTO, error)
	AnswerQuestion(studentID uuid.UUID, questionID uint, req dto.QAAnswerCreateDTO) (*dto.QAAnswerDTO, error)
	ModerateQuestion(questionID uint, status string) error
	ModerateAnswer(answerID uint, status string) error
	AcceptAnswer(studentID uuid.UUID, questionID, answerID uint) error
	ListCourseQuestions(courseID uint) ([]dto.QAQuestionDTO, error)
	ListPendingQuestions() ([]dto.QAQuestionDTO, error)
}

type qaService struct {
	questionRepo repository.QAQuestionRepository
	answerRepo   repository.QAAnswerRepository
	courseRepo   repository.CourseRepository
}

func NewQAService(
	questionRepo repository.QAQuestionRepository,
	answerRepo repository.QAAnswerRepository,
	courseRepo repository.CourseRepository,
) QAService {
	return &qaService{questionRepo: questionRepo, answerRepo: answerRepo, courseRepo: courseRepo}
}

func (s *qaService) AskQuestion(studentID uuid.UUID, req dto.QAQuestionCreateDTO) (*dto.QAQuestionDTO, error) {
	if _, err := s.courseRepo.FindByID(req.CourseID); err != nil {
		return nil, fmt.Errorf("course not found with ID %d: %w", req.CourseID, err)
	}
	question := model.QAQuestion{
		CourseID:  req.CourseID,
		StudentID: studentID,
		Title:     req.Title,
		Body:      req.Body,
		Status:    model.ModerationPending,
	}
	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Uint("courseID", req.CourseID).Msg("AskQuestion: database error")
		return nil, fmt.Errorf("database error creating question: %w", err)
	}
	return toQAQuestionDTO(&question)
}

func (s *qaService) AnswerQuestion(studentID uuid.UUID, questionID uint, req dto.QAAnswerCreateDTO) (*dto.QAAnswerDTO, error) {
	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		return nil, fmt.Errorf("question not found with ID %d: %w", questionID, err)
	}
	if question.Status != model.ModerationApproved {
		return nil, fmt.Errorf("question %d: %w", questionID, ErrQuestionNotApproved)
	}
	answer := model.QAAnswer{
		QuestionID: questionID,
		StudentID:  studentID,
		Body:       req.Body,
		Status:     model.ModerationPending,
	}
	if err := s.answerRepo.Create(&answer); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("AnswerQuestion: database error")
		return nil, fmt.Errorf("database error creating answer: %w", err)
	}
	var resp dto.QAAnswerDTO
	if err := copier.Copy(&resp, &answer); err != nil {
		return nil, fmt.Errorf("error preparing answer response: %w", err)
	}
	return &resp, nil
}

func (s *qaService) ModerateQuestion(questionID uint, status string) error {
	if _, err := s.questionRepo.FindByID(questionID); err != nil {
		return fmt.Errorf("question not found with ID %d: %w", questionID, err)
	}
	if err := s.questionRepo.UpdateStatus(questionID, status); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Str("status", status).Msg("ModerateQuestion: database error")
		return fmt.Errorf("database error moderating question %d: %w", questionID, err)
	}
	log.Info().Uint("questionID", questionID).Str("status", status).Msg("Q&A question moderated")
	return nil
}

func (s *qaService) ModerateAnswer(answerID uint, status string) error {
	if _, err := s.answerRepo.FindByID(answerID); err != nil {
		return fmt.Errorf("answer not found with ID %d: %w", answerID, err)
	}
	if err := s.answerRepo.UpdateStatus(answerID, status); err != nil {
		log.Error().Err(err).Uint("answerID", answerID).Str("status", status).Msg("ModerateAnswer: database error")
		return fmt.Errorf("database error moderating answer %d: %w", answerID, err)
	}
	log.Info().Uint("answerID", answerID).Str("status", status).Msg("Q&A answer moderated")
	return nil
}

// AcceptAnswer marks one approved answer as the question author's accepted
// solution. Only the author may accept.
func (s *qaService) AcceptAnswer(studentID uuid.UUID, questionID, answerID uint) error {
	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		return fmt.Errorf("question not found with ID %d: %w", questionID, err)
	}
	if question.StudentID != studentID {
		return fmt.Errorf("question %d: %w", questionID, ErrNotOwner)
	}
	answer, err := s.answerRepo.FindByID(answerID)
	if err != nil {
		return fmt.Errorf("answer not found with ID %d: %w", answerID, err)
	}
	if answer.QuestionID != questionID || answer.Status != model.ModerationApproved {
		return fmt.Errorf("answer %d: %w", answerID, ErrAnswerNotApproved)
	}
	if err := s.questionRepo.SetAcceptedAnswer(questionID, answerID); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Uint("answerID", answerID).Msg("AcceptAnswer: database error")
		return fmt.Errorf("database error accepting answer %d: %w", answerID, err)
	}
	return nil
}

func (s *qaService) ListCourseQuestions(courseID uint) ([]dto.QAQuestionDTO, error) {
	questions, err := s.questionRepo.FindApprovedByCourse(courseID)
	if err != nil {
		log.Error().Err(err).Uint("courseID", courseID).Msg("ListCourseQuestions: repository error")
		return nil, fmt.Errorf("error fetching questions for course %d: %w", courseID, err)
	}
	return toQAQuestionDTOs(questions)
}

func (s *qaService) ListPendingQuestions() ([]dto.QAQuestionDTO, error) {
	questions, err := s.questionRepo.FindPending()
	if err != nil {
		log.Error().Err(err).Msg("ListPendingQuestions: repository error")
		return nil, fmt.Errorf("error fetching pending questions: %w", err)
	}
	return toQAQuestionDTOs(questions)
}

func toQAQuestionDTO(question *model.QAQuestion) (*dto.QAQuestionDTO, error) {
	var resp dto.QAQuestionDTO
	if err := copier.Copy(&resp, question); err != nil {
		return nil, fmt.Errorf("error preparing question response: %w", err)
	}
	for i := range resp.Answers {
		if question.AcceptedAnswerID != nil && resp.Answers[i].ID == *question.AcceptedAnswerID {
			resp.Answers[i].Accepted = true
		}
	}
	return &resp, nil
}

func toQAQuestionDTOs(questions []model.QAQuestion) ([]dto.QAQuestionDTO, error) {
	dtos := make([]dto.QAQuestionDTO, 0, len(questions))
	for i := range questions {
		item, err := toQAQuestionDTO(&questions[i])
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, *item)
	}
	return dtos, nil
}
