package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/Quokka/config"
	"github.com/lshigami/Quokka/internal/dto"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// QuestionDraftService asks Gemini to draft multiple-choice questions for
// a topic. Drafts are returned for human review; the service never writes
// to the question bank.
type QuestionDraftService interface {
	DraftQuestions(topic string, count int) ([]dto.QuestionDraftDTO, error)
}

type questionDraftService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewQuestionDraftService(cfg *config.Config) (QuestionDraftService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. QuestionDraftService will be non-functional.")
		return &questionDraftService{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel("gemini-1.5-flash")
	return &questionDraftService{client: model, cfg: cfg}, nil
}

func (s *questionDraftService) DraftQuestions(topic string, count int) ([]dto.QuestionDraftDTO, error) {
	if s.client == nil {
		return nil, fmt.Errorf("gemini client not initialized, set GEMINI_API_KEY to enable drafting")
	}
	if count < 1 {
		count = 1
	}

	var prompt strings.Builder
	prompt.WriteString("You are an experienced course author writing multiple-choice quiz questions.\n")
	prompt.WriteString(fmt.Sprintf("Draft %d multiple-choice questions about the topic: %q.\n\n", count, topic))
	prompt.WriteString("Each question must have exactly four options and one correct answer.\n")
	prompt.WriteString("Respond with ONLY a JSON array, no prose, where each element has the keys:\n")
	prompt.WriteString(`"question_text", "option_a", "option_b", "option_c", "option_d", "correct_answer"` + "\n")
	prompt.WriteString(`and "correct_answer" is one of "a", "b", "c", "d".` + "\n")

	ctx := context.Background()
	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Gemini API error during question drafting")
		return nil, fmt.Errorf("gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts in response.")
		return nil, fmt.Errorf("gemini returned no content")
	}

	fullResponseText := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			fullResponseText += string(txt)
		}
	}
	if fullResponseText == "" {
		return nil, fmt.Errorf("gemini returned no text content")
	}

	drafts, err := parseQuestionDrafts(fullResponseText)
	if err != nil {
		log.Warn().Err(err).Str("rawResponse", fullResponseText).Msg("Failed to parse question drafts from Gemini response")
		return nil, err
	}
	log.Info().Str("topic", topic).Int("drafted", len(drafts)).Msg("Question drafts generated")
	return drafts, nil
}

// parseQuestionDrafts tolerates markdown code fences around the JSON array
// and drops drafts with a malformed answer letter.
func parseQuestionDrafts(raw string) ([]dto.QuestionDraftDTO, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("response does not contain a JSON array. Raw: %s", raw)
	}

	var drafts []dto.QuestionDraftDTO
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &drafts); err != nil {
		return nil, fmt.Errorf("could not decode question drafts: %w", err)
	}

	valid := drafts[:0]
	for _, d := range drafts {
		d.CorrectAnswer = strings.ToLower(strings.TrimSpace(d.CorrectAnswer))
		switch d.CorrectAnswer {
		case "a", "b", "c", "d":
			valid = append(valid, d)
		default:
			log.Warn().Str("correctAnswer", d.CorrectAnswer).Msg("Dropping draft with invalid answer letter")
		}
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("no usable question drafts in response")
	}
	return valid, nil
}
