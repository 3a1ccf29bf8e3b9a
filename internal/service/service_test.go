package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Course{},
		&model.Category{},
		&model.Exercise{},
		&model.QuizQuestion{},
		&model.QuizAttempt{},
		&model.QuizAnswer{},
		&model.QAQuestion{},
		&model.QAAnswer{},
		&model.QAVote{},
		&model.Note{},
	))
	return db
}

// seedCatalog creates a course with two ordered chapters and one exercise
// per chapter.
func seedCatalog(t *testing.T, db *gorm.DB) (course model.Course, cat1, cat2 model.Category, ex1, ex2 model.Exercise) {
	t.Helper()
	course = model.Course{Title: "Go from scratch"}
	require.NoError(t, db.Create(&course).Error)

	cat1 = model.Category{CourseID: course.ID, Title: "Basics", OrderIndex: 1}
	cat2 = model.Category{CourseID: course.ID, Title: "Concurrency", OrderIndex: 2}
	require.NoError(t, db.Create(&cat1).Error)
	require.NoError(t, db.Create(&cat2).Error)

	ex1 = model.Exercise{
		CourseID: course.ID, CategoryID: cat1.ID, Title: "Basics drill",
		QuestionCountMin: 2, QuestionCountMax: 4, PassingScore: 60,
	}
	ex2 = model.Exercise{
		CourseID: course.ID, CategoryID: cat2.ID, Title: "Concurrency drill",
		QuestionCountMin: 2, QuestionCountMax: 4, PassingScore: 60,
	}
	require.NoError(t, db.Create(&ex1).Error)
	require.NoError(t, db.Create(&ex2).Error)
	return
}

func seedQuestion(t *testing.T, db *gorm.DB, courseID uint, categoryID *uint, correct string) model.QuizQuestion {
	t.Helper()
	q := model.QuizQuestion{
		CourseID:      courseID,
		CategoryID:    categoryID,
		QuestionText:  "What does := do?",
		OptionA:       "declares and assigns",
		OptionB:       "compares",
		OptionC:       "shadows",
		OptionD:       "panics",
		CorrectAnswer: correct,
	}
	require.NoError(t, db.Create(&q).Error)
	return q
}

func newStudent(t *testing.T) uuid.UUID {
	t.Helper()
	return uuid.New()
}
