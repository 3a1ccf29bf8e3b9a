package service

import (
	"testing"

	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/lshigami/Quokka/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRetakeService(db *gorm.DB) QuizRetakeService {
	return NewQuizRetakeService(
		repository.NewQuizAttemptRepository(db),
		repository.NewQuizQuestionRepository(db),
	)
}

func TestRetakeCreatesFreshAttempt(t *testing.T) {
	db := newTestDB(t)
	student := newStudent(t)
	original, questions := seedAttempt(t, db, student, 3, 60)

	// Complete the original so the retake starts from a terminal row.
	subSvc := newSubmissionService(db)
	_, err := subSvc.Submit(student, original.ID, dto.QuizSubmitDTO{
		Answers: answersFor(questions, func(i int) string { return "a" }),
	})
	require.NoError(t, err)

	svc := newRetakeService(db)
	fresh, err := svc.Retake(student, original.ID)
	require.NoError(t, err)

	require.NotEqual(t, original.ID, fresh.Attempt.ID, "retake must be a new row")
	require.Equal(t, original.ExerciseID, fresh.Attempt.ExerciseID)
	require.Equal(t, original.QuizType, fresh.Attempt.QuizType)
	require.Equal(t, 0, fresh.Attempt.Score)
	require.False(t, fresh.Attempt.Passed)
	require.Nil(t, fresh.Attempt.CompletedAt)
}

func TestRetakeReusesQuestionSet(t *testing.T) {
	db := newTestDB(t)
	student := newStudent(t)
	original, questions := seedAttempt(t, db, student, 4, 60)

	svc := newRetakeService(db)
	fresh, err := svc.Retake(student, original.ID)
	require.NoError(t, err)
	require.Len(t, fresh.Questions, 4)

	want := make(map[uint]bool, len(questions))
	for _, q := range questions {
		want[q.ID] = true
	}
	for _, q := range fresh.Questions {
		require.True(t, want[q.ID], "retake question %d is not from the original set", q.ID)
	}
}

func TestRetakeLeavesOriginalUntouched(t *testing.T) {
	db := newTestDB(t)
	student := newStudent(t)
	original, questions := seedAttempt(t, db, student, 2, 60)

	subSvc := newSubmissionService(db)
	_, err := subSvc.Submit(student, original.ID, dto.QuizSubmitDTO{
		Answers: answersFor(questions, func(i int) string { return "a" }),
	})
	require.NoError(t, err)

	var before model.QuizAttempt
	require.NoError(t, db.First(&before, original.ID).Error)

	svc := newRetakeService(db)
	_, err = svc.Retake(student, original.ID)
	require.NoError(t, err)

	var after model.QuizAttempt
	require.NoError(t, db.First(&after, original.ID).Error)
	require.Equal(t, before.Score, after.Score)
	require.Equal(t, before.Passed, after.Passed)
	require.Equal(t, before.CompletedAt.UTC(), after.CompletedAt.UTC())
	require.Equal(t, before.UpdatedAt.UTC(), after.UpdatedAt.UTC())
}

func TestRetakeRejectsForeignStudent(t *testing.T) {
	db := newTestDB(t)
	owner := newStudent(t)
	original, _ := seedAttempt(t, db, owner, 2, 60)

	svc := newRetakeService(db)
	_, err := svc.Retake(newStudent(t), original.ID)
	require.ErrorIs(t, err, ErrNotOwner)
}
