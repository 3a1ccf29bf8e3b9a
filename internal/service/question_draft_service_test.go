package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseQuestionDraftsWithCodeFence(t *testing.T) {
	raw := "```json\n[{\"question_text\":\"What closes a channel?\",\"option_a\":\"close(ch)\",\"option_b\":\"ch = nil\",\"option_c\":\"delete(ch)\",\"option_d\":\"drop(ch)\",\"correct_answer\":\"A\"}]\n```"

	drafts, err := parseQuestionDrafts(raw)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	require.Equal(t, "a", drafts[0].CorrectAnswer, "answer letter is normalized")
}

func TestParseQuestionDraftsDropsInvalidAnswerLetter(t *testing.T) {
	raw := `[
		{"question_text":"q1","option_a":"1","option_b":"2","option_c":"3","option_d":"4","correct_answer":"b"},
		{"question_text":"q2","option_a":"1","option_b":"2","option_c":"3","option_d":"4","correct_answer":"e"}
	]`

	drafts, err := parseQuestionDrafts(raw)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	require.Equal(t, "q1", drafts[0].QuestionText)
}

func TestParseQuestionDraftsRejectsProse(t *testing.T) {
	_, err := parseQuestionDrafts("Sorry, I cannot draft questions right now.")
	require.Error(t, err)
}

func TestParseQuestionDraftsRejectsAllInvalid(t *testing.T) {
	_, err := parseQuestionDrafts(`[{"question_text":"q","correct_answer":"x"}]`)
	require.Error(t, err)
}
