package service

import (
	"testing"

	"github.com/lshigami/Quokka/internal/model"
	"github.com/lshigami/Quokka/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newGeneratorService(db *gorm.DB) QuizGeneratorService {
	return NewQuizGeneratorService(
		repository.NewExerciseRepository(db),
		repository.NewQuizQuestionRepository(db),
		repository.NewQuizAttemptRepository(db),
	)
}

func TestGenerateChapterQuizScopedToChapter(t *testing.T) {
	db := newTestDB(t)
	course, cat1, cat2, _, ex2 := seedCatalog(t, db)

	seedQuestion(t, db, course.ID, &cat1.ID, "a")
	q2a := seedQuestion(t, db, course.ID, &cat2.ID, "b")
	q2b := seedQuestion(t, db, course.ID, &cat2.ID, "c")

	svc := newGeneratorService(db)
	quiz, err := svc.Generate(newStudent(t), ex2.ID, model.QuizTypeChapter)
	require.NoError(t, err)

	// Only chapter-2 questions are eligible for a chapter quiz on ex2.
	eligible := map[uint]bool{q2a.ID: true, q2b.ID: true}
	require.NotEmpty(t, quiz.Questions)
	for _, q := range quiz.Questions {
		require.True(t, eligible[q.ID], "question %d is outside the exercise's chapter", q.ID)
	}

	require.Equal(t, len(quiz.Questions), quiz.Attempt.TotalQuestions)
	require.Equal(t, 0, quiz.Attempt.Score)
	require.False(t, quiz.Attempt.Passed)
	require.Nil(t, quiz.Attempt.CompletedAt)
	require.Equal(t, ex2.PassingScore, quiz.Attempt.PassingScore)
}

func TestGenerateProgressQuizSpansEarlierChapters(t *testing.T) {
	db := newTestDB(t)
	course, cat1, cat2, ex1, ex2 := seedCatalog(t, db)

	q1 := seedQuestion(t, db, course.ID, &cat1.ID, "a")
	q2 := seedQuestion(t, db, course.ID, &cat2.ID, "b")

	svc := newGeneratorService(db)

	// Progress quiz on the chapter-2 exercise may draw from both chapters.
	quiz, err := svc.Generate(newStudent(t), ex2.ID, model.QuizTypeProgress)
	require.NoError(t, err)
	eligible := map[uint]bool{q1.ID: true, q2.ID: true}
	for _, q := range quiz.Questions {
		require.True(t, eligible[q.ID])
	}

	// Progress quiz on the chapter-1 exercise must not reach forward.
	quiz, err = svc.Generate(newStudent(t), ex1.ID, model.QuizTypeProgress)
	require.NoError(t, err)
	for _, q := range quiz.Questions {
		require.Equal(t, q1.ID, q.ID, "progress quiz on chapter 1 reached into chapter 2")
	}
}

func TestGenerateRespectsQuestionCountBounds(t *testing.T) {
	db := newTestDB(t)
	course, _, cat2, _, ex2 := seedCatalog(t, db)

	for i := 0; i < 12; i++ {
		seedQuestion(t, db, course.ID, &cat2.ID, "a")
	}

	svc := newGeneratorService(db)
	for i := 0; i < 10; i++ {
		quiz, err := svc.Generate(newStudent(t), ex2.ID, model.QuizTypeChapter)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(quiz.Questions), ex2.QuestionCountMin)
		require.LessOrEqual(t, len(quiz.Questions), ex2.QuestionCountMax)
	}
}

func TestGenerateUsesAllQuestionsWhenBankIsSmall(t *testing.T) {
	db := newTestDB(t)
	course, _, cat2, _, ex2 := seedCatalog(t, db)

	// One question, below QuestionCountMin.
	q := seedQuestion(t, db, course.ID, &cat2.ID, "a")

	svc := newGeneratorService(db)
	quiz, err := svc.Generate(newStudent(t), ex2.ID, model.QuizTypeChapter)
	require.NoError(t, err)
	require.Len(t, quiz.Questions, 1)
	require.Equal(t, q.ID, quiz.Questions[0].ID)
}

func TestGenerateEmptyBankIsDistinctError(t *testing.T) {
	db := newTestDB(t)
	_, _, _, _, ex2 := seedCatalog(t, db)

	svc := newGeneratorService(db)
	_, err := svc.Generate(newStudent(t), ex2.ID, model.QuizTypeChapter)
	require.ErrorIs(t, err, ErrEmptyQuestionBank)

	var count int64
	require.NoError(t, db.Model(&model.QuizAttempt{}).Count(&count).Error)
	require.Zero(t, count, "no attempt row may be written for an empty bank")
}

func TestGenerateStripsAnswerKey(t *testing.T) {
	db := newTestDB(t)
	course, _, cat2, _, ex2 := seedCatalog(t, db)
	seedQuestion(t, db, course.ID, &cat2.ID, "d")

	svc := newGeneratorService(db)
	quiz, err := svc.Generate(newStudent(t), ex2.ID, model.QuizTypeChapter)
	require.NoError(t, err)

	// The question DTO has no correct-answer field; spot-check the options
	// are still present.
	require.NotEmpty(t, quiz.Questions[0].OptionA)
	require.NotEmpty(t, quiz.Questions[0].QuestionText)
}

func TestGenerateUnknownQuizType(t *testing.T) {
	db := newTestDB(t)
	course, _, cat2, _, ex2 := seedCatalog(t, db)
	seedQuestion(t, db, course.ID, &cat2.ID, "a")

	svc := newGeneratorService(db)
	_, err := svc.Generate(newStudent(t), ex2.ID, "weekly")
	require.Error(t, err)
}
