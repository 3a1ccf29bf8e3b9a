package service

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/lshigami/Quokka/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// QuizSubmissionService grades full answer batches against an attempt's
// fixed question list and moves the attempt to its terminal state exactly
// once.
type QuizSubmissionService interface {
	Submit(studentID uuid.UUID, attemptID uint, req dto.QuizSubmitDTO) (*dto.GradedAttemptDTO, error)
	GetAttemptReview(studentID uuid.UUID, attemptID uint) (*dto.GradedAttemptDTO, error)
	GetStudentAttempts(studentID uuid.UUID, exerciseID uint) ([]dto.QuizAttemptDTO, error)
}

type quizSubmissionService struct {
	attemptRepo  repository.QuizAttemptRepository
	questionRepo repository.QuizQuestionRepository
	answerRepo   repository.QuizAnswerRepository
	db           *gorm.DB
}

func NewQuizSubmissionService(
	attemptRepo repository.QuizAttemptRepository,
	questionRepo repository.QuizQuestionRepository,
	answerRepo repository.QuizAnswerRepository,
	db *gorm.DB,
) QuizSubmissionService {
	return &quizSubmissionService{
		attemptRepo:  attemptRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		db:           db,
	}
}

// Submit validates and grades a batch of answers. Validation failures
// reject the whole submission before any write; the terminal update is a
// conditional write on completed_at so a concurrent duplicate submission
// loses cleanly instead of double-grading.
func (s *quizSubmissionService) Submit(studentID uuid.UUID, attemptID uint, req dto.QuizSubmitDTO) (*dto.GradedAttemptDTO, error) {
	attempt, err := s.attemptRepo.FindByID(attemptID)
	if err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("Submit: attempt not found")
		return nil, fmt.Errorf("attempt not found with ID %d: %w", attemptID, err)
	}
	if attempt.StudentID != studentID {
		return nil, fmt.Errorf("attempt %d: %w", attemptID, ErrNotOwner)
	}
	if attempt.IsCompleted() {
		return nil, fmt.Errorf("attempt %d: %w", attemptID, ErrAttemptCompleted)
	}

	// Grade against the stored question list, never the client payload.
	questionIDs := []uint(attempt.QuestionIDs)
	questions, err := s.questionRepo.FindByIDs(questionIDs)
	if err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("Submit: failed to load attempt questions")
		return nil, fmt.Errorf("error loading questions for attempt %d: %w", attemptID, err)
	}
	questionMap := make(map[uint]model.QuizQuestion, len(questions))
	for _, q := range questions {
		questionMap[q.ID] = q
	}

	if len(req.Answers) != attempt.TotalQuestions {
		return nil, fmt.Errorf("attempt %d expects %d answers, got %d: %w",
			attemptID, attempt.TotalQuestions, len(req.Answers), ErrAnswerCountMismatch)
	}
	seen := make(map[uint]bool, len(req.Answers))
	for _, ans := range req.Answers {
		if seen[ans.QuestionID] {
			return nil, fmt.Errorf("question %d answered twice: %w", ans.QuestionID, ErrDuplicateAnswer)
		}
		seen[ans.QuestionID] = true
		if _, ok := questionMap[ans.QuestionID]; !ok {
			return nil, fmt.Errorf("question %d: %w", ans.QuestionID, ErrUnknownQuestion)
		}
	}

	now := time.Now()
	correctCount := 0
	answerRows := make([]model.QuizAnswer, 0, len(req.Answers))
	review := make([]dto.AnswerReviewDTO, 0, len(req.Answers))
	for _, ans := range req.Answers {
		question := questionMap[ans.QuestionID]
		isCorrect := ans.SelectedAnswer == question.CorrectAnswer
		if isCorrect {
			correctCount++
		}
		answerRows = append(answerRows, model.QuizAnswer{
			AttemptID:      attempt.ID,
			QuestionID:     question.ID,
			SelectedAnswer: ans.SelectedAnswer,
			IsCorrect:      isCorrect,
			AnsweredAt:     now,
		})
		review = append(review, dto.AnswerReviewDTO{
			QuestionID:     question.ID,
			QuestionText:   question.QuestionText,
			SelectedAnswer: ans.SelectedAnswer,
			CorrectAnswer:  question.CorrectAnswer,
			IsCorrect:      isCorrect,
		})
	}

	percentage := scorePercentage(correctCount, attempt.TotalQuestions)
	passed := percentage >= attempt.PassingScore

	// Answer rows and the terminal transition commit together: if the
	// conditional update moves zero rows, a concurrent submission already
	// completed the attempt and everything here rolls back.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.answerRepo.CreateBatch(tx, answerRows); err != nil {
			return fmt.Errorf("failed to persist answers: %w", err)
		}
		affected, err := s.attemptRepo.MarkCompleted(tx, attempt.ID, correctCount, passed, now)
		if err != nil {
			return fmt.Errorf("failed to complete attempt: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("attempt %d: %w", attempt.ID, ErrAttemptCompleted)
		}
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Uint("attemptID", attempt.ID).Msg("Submit: grading transaction did not commit")
		return nil, err
	}

	attempt.Score = correctCount
	attempt.Passed = passed
	attempt.CompletedAt = &now

	log.Info().
		Uint("attemptID", attempt.ID).
		Int("score", correctCount).
		Int("percentage", percentage).
		Bool("passed", passed).
		Msg("Quiz attempt graded")

	return buildGradedAttemptDTO(attempt, percentage, review)
}

// GetAttemptReview returns an attempt with its per-question review. The
// answer key is only revealed once the attempt is terminal.
func (s *quizSubmissionService) GetAttemptReview(studentID uuid.UUID, attemptID uint) (*dto.GradedAttemptDTO, error) {
	attempt, err := s.attemptRepo.FindByIDWithAnswers(attemptID)
	if err != nil {
		log.Warn().Err(err).Uint("attemptID", attemptID).Msg("GetAttemptReview: attempt not found")
		return nil, fmt.Errorf("attempt not found with ID %d: %w", attemptID, err)
	}
	if attempt.StudentID != studentID {
		return nil, fmt.Errorf("attempt %d: %w", attemptID, ErrNotOwner)
	}

	var review []dto.AnswerReviewDTO
	var percentage int
	if attempt.IsCompleted() {
		percentage = scorePercentage(attempt.Score, attempt.TotalQuestions)
		review = make([]dto.AnswerReviewDTO, len(attempt.Answers))
		for i, ans := range attempt.Answers {
			review[i] = dto.AnswerReviewDTO{
				QuestionID:     ans.QuestionID,
				QuestionText:   ans.Question.QuestionText,
				SelectedAnswer: ans.SelectedAnswer,
				CorrectAnswer:  ans.Question.CorrectAnswer,
				IsCorrect:      ans.IsCorrect,
			}
		}
	}
	return buildGradedAttemptDTO(attempt, percentage, review)
}

func (s *quizSubmissionService) GetStudentAttempts(studentID uuid.UUID, exerciseID uint) ([]dto.QuizAttemptDTO, error) {
	attempts, err := s.attemptRepo.FindAllByExerciseAndStudent(exerciseID, studentID)
	if err != nil {
		log.Error().Err(err).Uint("exerciseID", exerciseID).Msg("GetStudentAttempts: repository error")
		return nil, fmt.Errorf("error fetching attempts for exercise %d: %w", exerciseID, err)
	}
	dtos := make([]dto.QuizAttemptDTO, 0, len(attempts))
	for _, attempt := range attempts {
		var summary dto.QuizAttemptDTO
		if err := copier.Copy(&summary, &attempt); err != nil {
			log.Error().Err(err).Uint("attemptID", attempt.ID).Msg("GetStudentAttempts: DTO copy failed")
			continue
		}
		if attempt.IsCompleted() {
			pct := scorePercentage(attempt.Score, attempt.TotalQuestions)
			summary.Percentage = &pct
		}
		dtos = append(dtos, summary)
	}
	return dtos, nil
}

// scorePercentage rounds half away from zero, matching what students see
// on their result screen.
func scorePercentage(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

func buildGradedAttemptDTO(attempt *model.QuizAttempt, percentage int, review []dto.AnswerReviewDTO) (*dto.GradedAttemptDTO, error) {
	var resp dto.GradedAttemptDTO
	if err := copier.Copy(&resp.Attempt, attempt); err != nil {
		return nil, fmt.Errorf("error preparing attempt response: %w", err)
	}
	if attempt.IsCompleted() {
		resp.Attempt.Percentage = &percentage
	}
	resp.Review = review
	return &resp, nil
}
