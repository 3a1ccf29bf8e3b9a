package service

import "errors"

// Sentinel errors for the failure taxonomy. Controllers translate these to
// HTTP statuses with errors.Is; services wrap them with context via %w.
var (
	// ErrEmptyQuestionBank means no eligible questions exist for the
	// requested quiz scope. Nothing is written when it is returned.
	ErrEmptyQuestionBank = errors.New("no eligible questions available for this quiz")

	// ErrAttemptCompleted means the attempt already reached its terminal
	// state. Re-submissions are rejected, never replayed from cache.
	ErrAttemptCompleted = errors.New("attempt already completed")

	// ErrAnswerCountMismatch means the submitted batch does not cover the
	// attempt's question list exactly.
	ErrAnswerCountMismatch = errors.New("answer count does not match question count")

	// ErrDuplicateAnswer means the batch answers the same question twice.
	ErrDuplicateAnswer = errors.New("duplicate answer for question")

	// ErrUnknownQuestion means an answered question id is not part of the
	// attempt's fixed question set.
	ErrUnknownQuestion = errors.New("answered question does not belong to this attempt")

	// ErrQuestionReferenced blocks deletion or edits of bank questions
	// that graded answers already reference.
	ErrQuestionReferenced = errors.New("question is referenced by graded answers")

	// ErrNotOwner means the caller does not own the addressed resource.
	ErrNotOwner = errors.New("resource does not belong to the requesting user")

	// ErrQuestionNotApproved rejects answers to Q&A questions that have
	// not passed moderation.
	ErrQuestionNotApproved = errors.New("question has not been approved")

	// ErrAnswerNotApproved rejects accepting an answer that has not passed
	// moderation or does not belong to the question.
	ErrAnswerNotApproved = errors.New("answer is not an approved answer of this question")
)
