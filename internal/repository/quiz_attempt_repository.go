package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/Quokka/internal/model"
	"gorm.io/gorm"
)

type QuizAttemptRepository interface {
	Create(attempt *model.QuizAttempt) error
	FindByID(id uint) (*model.QuizAttempt, error)
	FindByIDWithAnswers(id uint) (*model.QuizAttempt, error)
	FindAllByExerciseAndStudent(exerciseID uint, studentID uuid.UUID) ([]model.QuizAttempt, error)
	// MarkCompleted performs the terminal transition, guarded by
	// completed_at still being null. It returns the number of rows moved;
	// zero means another submission won the race (or the attempt was
	// already terminal) and the caller must not treat the call as a
	// success.
	MarkCompleted(tx *gorm.DB, attemptID uint, score int, passed bool, completedAt time.Time) (int64, error)
}

type quizAttemptRepository struct {
	db *gorm.DB
}

func NewQuizAttemptRepository(db *gorm.DB) QuizAttemptRepository {
	return &quizAttemptRepository{db: db}
}

func (r *quizAttemptRepository) Create(attempt *model.QuizAttempt) error {
	return r.db.Create(attempt).Error
}

func (r *quizAttemptRepository) FindByID(id uint) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	if err := r.db.First(&attempt, id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *quizAttemptRepository) FindByIDWithAnswers(id uint) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := r.db.Preload("Answers.Question").First(&attempt, id).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *quizAttemptRepository) FindAllByExerciseAndStudent(exerciseID uint, studentID uuid.UUID) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.db.
		Where("exercise_id = ? AND student_id = ?", exerciseID, studentID).
		Order("started_at DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *quizAttemptRepository) MarkCompleted(tx *gorm.DB, attemptID uint, score int, passed bool, completedAt time.Time) (int64, error) {
	if tx == nil {
		tx = r.db
	}
	result := tx.Model(&model.QuizAttempt{}).
		Where("id = ? AND completed_at IS NULL", attemptID).
		Updates(map[string]interface{}{
			"score":        score,
			"passed":       passed,
			"completed_at": completedAt,
		})
	return result.RowsAffected, result.Error
}
