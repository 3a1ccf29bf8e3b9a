package service

import (
	"testing"
	"time"

	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/lshigami/Quokka/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBankService(db *gorm.DB) QuestionBankService {
	return NewQuestionBankService(
		repository.NewQuizQuestionRepository(db),
		repository.NewQuizAnswerRepository(db),
		repository.NewCourseRepository(db),
	)
}

func updateFrom(q model.QuizQuestion) dto.QuestionUpdateDTO {
	return dto.QuestionUpdateDTO{
		QuestionText:  "What does go vet check?",
		OptionA:       q.OptionA,
		OptionB:       q.OptionB,
		OptionC:       q.OptionC,
		OptionD:       q.OptionD,
		CorrectAnswer: q.CorrectAnswer,
	}
}

func TestCreateQuestionRequiresCourse(t *testing.T) {
	db := newTestDB(t)
	svc := newBankService(db)

	_, err := svc.CreateQuestion(dto.QuestionCreateDTO{
		CourseID:      999,
		QuestionText:  "x",
		OptionA:       "a", OptionB: "b", OptionC: "c", OptionD: "d",
		CorrectAnswer: "a",
	})
	require.Error(t, err)
}

func TestUpdateUnreferencedQuestion(t *testing.T) {
	db := newTestDB(t)
	course, cat1, _, _, _ := seedCatalog(t, db)
	question := seedQuestion(t, db, course.ID, &cat1.ID, "a")

	svc := newBankService(db)
	updated, err := svc.UpdateQuestion(question.ID, updateFrom(question))
	require.NoError(t, err)
	require.Equal(t, "What does go vet check?", updated.QuestionText)
}

func TestUpdateBlockedOnceReferenced(t *testing.T) {
	db := newTestDB(t)
	course, cat1, _, _, _ := seedCatalog(t, db)
	question := seedQuestion(t, db, course.ID, &cat1.ID, "a")

	// An answer referencing the question freezes it.
	attempt := model.QuizAttempt{
		StudentID: newStudent(t), CourseID: course.ID, ExerciseID: 1,
		QuizType: model.QuizTypeChapter, TotalQuestions: 1, PassingScore: 60,
	}
	require.NoError(t, db.Create(&attempt).Error)
	require.NoError(t, db.Create(&model.QuizAnswer{
		AttemptID: attempt.ID, QuestionID: question.ID,
		SelectedAnswer: "a", IsCorrect: true, AnsweredAt: time.Now(),
	}).Error)

	svc := newBankService(db)
	_, err := svc.UpdateQuestion(question.ID, updateFrom(question))
	require.ErrorIs(t, err, ErrQuestionReferenced)

	err = svc.DeleteQuestion(question.ID)
	require.ErrorIs(t, err, ErrQuestionReferenced)

	// The frozen question survives untouched.
	var reloaded model.QuizQuestion
	require.NoError(t, db.First(&reloaded, question.ID).Error)
	require.Equal(t, question.QuestionText, reloaded.QuestionText)
}

func TestDeleteUnreferencedQuestion(t *testing.T) {
	db := newTestDB(t)
	course, cat1, _, _, _ := seedCatalog(t, db)
	question := seedQuestion(t, db, course.ID, &cat1.ID, "a")

	svc := newBankService(db)
	require.NoError(t, svc.DeleteQuestion(question.ID))

	err := db.First(&model.QuizQuestion{}, question.ID).Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListQuestionsFiltersByCategory(t *testing.T) {
	db := newTestDB(t)
	course, cat1, cat2, _, _ := seedCatalog(t, db)
	seedQuestion(t, db, course.ID, &cat1.ID, "a")
	seedQuestion(t, db, course.ID, &cat1.ID, "b")
	seedQuestion(t, db, course.ID, &cat2.ID, "c")

	svc := newBankService(db)
	items, err := svc.ListQuestions(repository.QuestionFilter{
		CourseID:   &course.ID,
		CategoryID: &cat1.ID,
	})
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		require.NotEmpty(t, item.CorrectAnswer, "the admin view includes the answer key")
	}
}
