package service

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/lshigami/Quokka/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// QuizRetakeService spawns a fresh attempt reusing a prior attempt's
// question set. The original row is never written to; the full attempt
// history stays intact.
type QuizRetakeService interface {
	Retake(studentID uuid.UUID, originalAttemptID uint) (*dto.GeneratedQuizDTO, error)
}

type quizRetakeService struct {
	attemptRepo  repository.QuizAttemptRepository
	questionRepo repository.QuizQuestionRepository
}

func NewQuizRetakeService(
	attemptRepo repository.QuizAttemptRepository,
	questionRepo repository.QuizQuestionRepository,
) QuizRetakeService {
	return &quizRetakeService{attemptRepo: attemptRepo, questionRepo: questionRepo}
}

func (s *quizRetakeService) Retake(studentID uuid.UUID, originalAttemptID uint) (*dto.GeneratedQuizDTO, error) {
	original, err := s.attemptRepo.FindByID(originalAttemptID)
	if err != nil {
		log.Warn().Err(err).Uint("attemptID", originalAttemptID).Msg("Retake: original attempt not found")
		return nil, fmt.Errorf("attempt not found with ID %d: %w", originalAttemptID, err)
	}
	if original.StudentID != studentID {
		return nil, fmt.Errorf("attempt %d: %w", originalAttemptID, ErrNotOwner)
	}

	questionIDs := make([]uint, len(original.QuestionIDs))
	copy(questionIDs, original.QuestionIDs)

	retake := model.QuizAttempt{
		StudentID:      studentID,
		CourseID:       original.CourseID,
		ExerciseID:     original.ExerciseID,
		QuizType:       original.QuizType,
		QuestionIDs:    datatypes.NewJSONSlice(questionIDs),
		TotalQuestions: original.TotalQuestions,
		PassingScore:   original.PassingScore,
		Score:          0,
		Passed:         false,
	}
	if err := s.attemptRepo.Create(&retake); err != nil {
		log.Error().Err(err).Uint("originalAttemptID", originalAttemptID).Msg("Retake: failed to create new attempt")
		return nil, fmt.Errorf("database error creating retake attempt: %w", err)
	}
	// The storage layer must hand out fresh identity; asserted, not assumed.
	if retake.ID == original.ID {
		return nil, fmt.Errorf("retake of attempt %d produced the same attempt id", original.ID)
	}

	questions, err := s.questionRepo.FindByIDs(questionIDs)
	if err != nil {
		log.Error().Err(err).Uint("attemptID", retake.ID).Msg("Retake: failed to load question set")
		return nil, fmt.Errorf("error loading questions for retake attempt %d: %w", retake.ID, err)
	}
	// Display order only; the stored list used for validation is unchanged.
	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	log.Info().
		Uint("originalAttemptID", original.ID).
		Uint("retakeAttemptID", retake.ID).
		Str("studentID", studentID.String()).
		Msg("Quiz retake created")

	return buildGeneratedQuizDTO(&retake, questions)
}
