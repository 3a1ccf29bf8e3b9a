package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/lshigami/Quokka/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newVoteService(db *gorm.DB) VoteService {
	return NewVoteService(
		repository.NewQAQuestionRepository(db),
		repository.NewQAVoteRepository(db),
		db,
	)
}

func seedApprovedQAQuestion(t *testing.T, db *gorm.DB, author uuid.UUID) model.QAQuestion {
	t.Helper()
	course, _, _, _, _ := seedCatalog(t, db)
	question := model.QAQuestion{
		CourseID:  course.ID,
		StudentID: author,
		Title:     "Why does my goroutine leak?",
		Body:      "The channel is never closed.",
		Status:    model.ModerationApproved,
	}
	require.NoError(t, db.Create(&question).Error)
	return question
}

func TestCastVoteCreatesVote(t *testing.T) {
	db := newTestDB(t)
	question := seedApprovedQAQuestion(t, db, newStudent(t))
	voter := newStudent(t)

	svc := newVoteService(db)
	result, err := svc.CastVote(voter, question.ID, model.VoteUp)
	require.NoError(t, err)
	require.Equal(t, 1, result.Upvotes)
	require.Equal(t, 0, result.Downvotes)
	require.Equal(t, model.VoteUp, result.UserVote)
}

func TestCastSameVoteTwiceRetracts(t *testing.T) {
	db := newTestDB(t)
	question := seedApprovedQAQuestion(t, db, newStudent(t))
	voter := newStudent(t)

	svc := newVoteService(db)
	_, err := svc.CastVote(voter, question.ID, model.VoteDown)
	require.NoError(t, err)

	result, err := svc.CastVote(voter, question.ID, model.VoteDown)
	require.NoError(t, err)
	require.Equal(t, 0, result.Upvotes)
	require.Equal(t, 0, result.Downvotes, "a repeated vote must round-trip the counter")
	require.Empty(t, result.UserVote)

	var votes int64
	require.NoError(t, db.Model(&model.QAVote{}).
		Where("question_id = ? AND user_id = ?", question.ID, voter).
		Count(&votes).Error)
	require.Zero(t, votes, "the vote row must be deleted on retraction")
}

func TestCastOppositeVoteFlips(t *testing.T) {
	db := newTestDB(t)
	question := seedApprovedQAQuestion(t, db, newStudent(t))
	voter := newStudent(t)

	svc := newVoteService(db)
	_, err := svc.CastVote(voter, question.ID, model.VoteUp)
	require.NoError(t, err)

	result, err := svc.CastVote(voter, question.ID, model.VoteDown)
	require.NoError(t, err)
	require.Equal(t, 0, result.Upvotes)
	require.Equal(t, 1, result.Downvotes)
	require.Equal(t, model.VoteDown, result.UserVote)

	// A flip edits in place, it never leaves a second row behind.
	var votes int64
	require.NoError(t, db.Model(&model.QAVote{}).
		Where("question_id = ? AND user_id = ?", question.ID, voter).
		Count(&votes).Error)
	require.EqualValues(t, 1, votes)
}

func TestVotesAreIndependentPerUser(t *testing.T) {
	db := newTestDB(t)
	question := seedApprovedQAQuestion(t, db, newStudent(t))
	alice := newStudent(t)
	bob := newStudent(t)

	svc := newVoteService(db)
	_, err := svc.CastVote(alice, question.ID, model.VoteUp)
	require.NoError(t, err)
	result, err := svc.CastVote(bob, question.ID, model.VoteUp)
	require.NoError(t, err)
	require.Equal(t, 2, result.Upvotes)

	// Bob retracting leaves Alice's vote standing.
	result, err = svc.CastVote(bob, question.ID, model.VoteUp)
	require.NoError(t, err)
	require.Equal(t, 1, result.Upvotes)
}
