package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/lshigami/Quokka/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newQAService(db *gorm.DB) QAService {
	return NewQAService(
		repository.NewQAQuestionRepository(db),
		repository.NewQAAnswerRepository(db),
		repository.NewCourseRepository(db),
	)
}

func askQuestion(t *testing.T, svc QAService, author uuid.UUID, courseID uint) *dto.QAQuestionDTO {
	t.Helper()
	question, err := svc.AskQuestion(author, dto.QAQuestionCreateDTO{
		CourseID: courseID,
		Title:    "Why does my goroutine leak?",
		Body:     "The channel is never closed.",
	})
	require.NoError(t, err)
	return question
}

func TestAskQuestionStartsPending(t *testing.T) {
	db := newTestDB(t)
	course, _, _, _, _ := seedCatalog(t, db)
	svc := newQAService(db)

	question := askQuestion(t, svc, newStudent(t), course.ID)
	require.Equal(t, model.ModerationPending, question.Status)

	// A pending question is invisible in the course listing.
	listed, err := svc.ListCourseQuestions(course.ID)
	require.NoError(t, err)
	require.Empty(t, listed)

	pending, err := svc.ListPendingQuestions()
	require.NoError(t, err)
	require.Len(t, pending, 1)
}

func TestApprovedQuestionAppearsInCourseListing(t *testing.T) {
	db := newTestDB(t)
	course, _, _, _, _ := seedCatalog(t, db)
	svc := newQAService(db)

	question := askQuestion(t, svc, newStudent(t), course.ID)
	require.NoError(t, svc.ModerateQuestion(question.ID, model.ModerationApproved))

	listed, err := svc.ListCourseQuestions(course.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, model.ModerationApproved, listed[0].Status)
}

func TestAnswerRequiresApprovedQuestion(t *testing.T) {
	db := newTestDB(t)
	course, _, _, _, _ := seedCatalog(t, db)
	svc := newQAService(db)

	question := askQuestion(t, svc, newStudent(t), course.ID)
	_, err := svc.AnswerQuestion(newStudent(t), question.ID, dto.QAAnswerCreateDTO{Body: "Close the channel."})
	require.ErrorIs(t, err, ErrQuestionNotApproved)

	require.NoError(t, svc.ModerateQuestion(question.ID, model.ModerationApproved))
	answer, err := svc.AnswerQuestion(newStudent(t), question.ID, dto.QAAnswerCreateDTO{Body: "Close the channel."})
	require.NoError(t, err)
	require.Equal(t, model.ModerationPending, answer.Status)
}

func TestRejectedQuestionStaysHidden(t *testing.T) {
	db := newTestDB(t)
	course, _, _, _, _ := seedCatalog(t, db)
	svc := newQAService(db)

	question := askQuestion(t, svc, newStudent(t), course.ID)
	require.NoError(t, svc.ModerateQuestion(question.ID, model.ModerationRejected))

	listed, err := svc.ListCourseQuestions(course.ID)
	require.NoError(t, err)
	require.Empty(t, listed)

	pending, err := svc.ListPendingQuestions()
	require.NoError(t, err)
	require.Empty(t, pending, "a rejected question leaves the moderation queue")
}

func TestAcceptAnswerAuthorOnly(t *testing.T) {
	db := newTestDB(t)
	course, _, _, _, _ := seedCatalog(t, db)
	svc := newQAService(db)
	author := newStudent(t)

	question := askQuestion(t, svc, author, course.ID)
	require.NoError(t, svc.ModerateQuestion(question.ID, model.ModerationApproved))
	answer, err := svc.AnswerQuestion(newStudent(t), question.ID, dto.QAAnswerCreateDTO{Body: "Close the channel."})
	require.NoError(t, err)
	require.NoError(t, svc.ModerateAnswer(answer.ID, model.ModerationApproved))

	err = svc.AcceptAnswer(newStudent(t), question.ID, answer.ID)
	require.ErrorIs(t, err, ErrNotOwner)

	require.NoError(t, svc.AcceptAnswer(author, question.ID, answer.ID))

	listed, err := svc.ListCourseQuestions(course.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.NotNil(t, listed[0].AcceptedAnswerID)
	require.Equal(t, answer.ID, *listed[0].AcceptedAnswerID)
	require.Len(t, listed[0].Answers, 1)
	require.True(t, listed[0].Answers[0].Accepted)
}

func TestAcceptAnswerRequiresApprovedAnswer(t *testing.T) {
	db := newTestDB(t)
	course, _, _, _, _ := seedCatalog(t, db)
	svc := newQAService(db)
	author := newStudent(t)

	question := askQuestion(t, svc, author, course.ID)
	require.NoError(t, svc.ModerateQuestion(question.ID, model.ModerationApproved))
	answer, err := svc.AnswerQuestion(newStudent(t), question.ID, dto.QAAnswerCreateDTO{Body: "Close the channel."})
	require.NoError(t, err)

	// Still pending.
	err = svc.AcceptAnswer(author, question.ID, answer.ID)
	require.ErrorIs(t, err, ErrAnswerNotApproved)
}

func TestAcceptAnswerRejectsAnswerOfOtherQuestion(t *testing.T) {
	db := newTestDB(t)
	course, _, _, _, _ := seedCatalog(t, db)
	svc := newQAService(db)
	author := newStudent(t)

	first := askQuestion(t, svc, author, course.ID)
	second := askQuestion(t, svc, author, course.ID)
	require.NoError(t, svc.ModerateQuestion(first.ID, model.ModerationApproved))
	require.NoError(t, svc.ModerateQuestion(second.ID, model.ModerationApproved))

	answer, err := svc.AnswerQuestion(newStudent(t), second.ID, dto.QAAnswerCreateDTO{Body: "Close the channel."})
	require.NoError(t, err)
	require.NoError(t, svc.ModerateAnswer(answer.ID, model.ModerationApproved))

	err = svc.AcceptAnswer(author, first.ID, answer.ID)
	require.ErrorIs(t, err, ErrAnswerNotApproved)
}
