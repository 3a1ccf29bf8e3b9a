package service

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/lshigami/Quokka/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// QuizGeneratorService creates new attempts from the question bank.
type QuizGeneratorService interface {
	Generate(studentID uuid.UUID, exerciseID uint, quizType string) (*dto.GeneratedQuizDTO, error)
}

type quizGeneratorService struct {
	exerciseRepo repository.ExerciseRepository
	questionRepo repository.QuizQuestionRepository
	attemptRepo  repository.QuizAttemptRepository
}

func NewQuizGeneratorService(
	exerciseRepo repository.ExerciseRepository,
	questionRepo repository.QuizQuestionRepository,
	attemptRepo repository.QuizAttemptRepository,
) QuizGeneratorService {
	return &quizGeneratorService{
		exerciseRepo: exerciseRepo,
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
	}
}

func (s *quizGeneratorService) Generate(studentID uuid.UUID, exerciseID uint, quizType string) (*dto.GeneratedQuizDTO, error) {
	exercise, err := s.exerciseRepo.FindByIDWithCategory(exerciseID)
	if err != nil {
		log.Error().Err(err).Uint("exerciseID", exerciseID).Msg("Generate: exercise not found")
		return nil, fmt.Errorf("exercise not found with ID %d: %w", exerciseID, err)
	}

	var eligible []model.QuizQuestion
	switch quizType {
	case model.QuizTypeChapter:
		eligible, err = s.questionRepo.FindEligibleForChapter(exercise.CourseID, exercise.CategoryID, exercise.ID)
	case model.QuizTypeProgress:
		eligible, err = s.questionRepo.FindEligibleForProgress(exercise.CourseID, exercise.Category.OrderIndex, exercise.ID)
	default:
		return nil, fmt.Errorf("unknown quiz type %q", quizType)
	}
	if err != nil {
		log.Error().Err(err).Uint("exerciseID", exerciseID).Str("quizType", quizType).Msg("Generate: failed to load eligible questions")
		return nil, fmt.Errorf("error loading eligible questions: %w", err)
	}
	if len(eligible) == 0 {
		return nil, fmt.Errorf("exercise %d (%s quiz): %w", exerciseID, quizType, ErrEmptyQuestionBank)
	}

	selected := sampleQuestions(eligible, exercise.QuestionCountMin, exercise.QuestionCountMax)

	questionIDs := make([]uint, len(selected))
	for i, q := range selected {
		questionIDs[i] = q.ID
	}

	attempt := model.QuizAttempt{
		StudentID:      studentID,
		CourseID:       exercise.CourseID,
		ExerciseID:     exercise.ID,
		QuizType:       quizType,
		QuestionIDs:    datatypes.NewJSONSlice(questionIDs),
		TotalQuestions: len(questionIDs),
		PassingScore:   exercise.PassingScore,
		Score:          0,
		Passed:         false,
	}
	if err := s.attemptRepo.Create(&attempt); err != nil {
		log.Error().Err(err).Uint("exerciseID", exerciseID).Msg("Generate: failed to create attempt")
		return nil, fmt.Errorf("database error creating attempt: %w", err)
	}

	log.Info().
		Uint("attemptID", attempt.ID).
		Str("studentID", studentID.String()).
		Str("quizType", quizType).
		Int("questionCount", len(selected)).
		Msg("Quiz attempt generated")

	return buildGeneratedQuizDTO(&attempt, selected)
}

// sampleQuestions picks a uniformly random subset sized within [min, max],
// clamped to what the bank holds, in random order.
func sampleQuestions(eligible []model.QuizQuestion, min, max int) []model.QuizQuestion {
	if min < 1 {
		min = 1
	}
	if max < min {
		max = min
	}

	n := max
	if max > min {
		n = min + rand.Intn(max-min+1)
	}
	if n > len(eligible) {
		n = len(eligible)
	}

	shuffled := make([]model.QuizQuestion, len(eligible))
	copy(shuffled, eligible)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}

// buildGeneratedQuizDTO strips the answer key before anything leaves the
// service.
func buildGeneratedQuizDTO(attempt *model.QuizAttempt, questions []model.QuizQuestion) (*dto.GeneratedQuizDTO, error) {
	var resp dto.GeneratedQuizDTO
	if err := copier.Copy(&resp.Attempt, attempt); err != nil {
		return nil, fmt.Errorf("error preparing attempt response: %w", err)
	}
	resp.Questions = make([]dto.QuizQuestionDTO, len(questions))
	for i, q := range questions {
		if err := copier.Copy(&resp.Questions[i], &q); err != nil {
			return nil, fmt.Errorf("error preparing question response: %w", err)
		}
	}
	return &resp, nil
}
