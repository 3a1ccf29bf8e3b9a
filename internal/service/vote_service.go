package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/lshigami/Quokka/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// VoteService is the one-vote-per-user state machine on Q&A questions:
// no vote -> voted (count up), same type again -> retracted (count down,
// row deleted), opposite type -> flipped (one count moves to the other).
type VoteService interface {
	CastVote(userID uuid.UUID, questionID uint, voteType string) (*dto.VoteResultDTO, error)
}

type voteService struct {
	questionRepo repository.QAQuestionRepository
	voteRepo     repository.QAVoteRepository
	db           *gorm.DB
}

func NewVoteService(questionRepo repository.QAQuestionRepository, voteRepo repository.QAVoteRepository, db *gorm.DB) VoteService {
	return &voteService{questionRepo: questionRepo, voteRepo: voteRepo, db: db}
}

func (s *voteService) CastVote(userID uuid.UUID, questionID uint, voteType string) (*dto.VoteResultDTO, error) {
	if voteType != model.VoteUp && voteType != model.VoteDown {
		return nil, fmt.Errorf("unknown vote type %q", voteType)
	}
	if _, err := s.questionRepo.FindByID(questionID); err != nil {
		return nil, fmt.Errorf("question not found with ID %d: %w", questionID, err)
	}

	var userVote string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.QAVote
		err := tx.Where("question_id = ? AND user_id = ?", questionID, userID).
			First(&existing).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			// First vote on this question.
			if err := tx.Create(&model.QAVote{
				QuestionID: questionID,
				UserID:     userID,
				VoteType:   voteType,
			}).Error; err != nil {
				return fmt.Errorf("failed to record vote: %w", err)
			}
			if err := adjustVoteCount(tx, questionID, voteType, +1); err != nil {
				return err
			}
			userVote = voteType
			return nil

		case err != nil:
			return fmt.Errorf("failed to load existing vote: %w", err)

		case existing.VoteType == voteType:
			// Same type again retracts the vote.
			if err := tx.Delete(&existing).Error; err != nil {
				return fmt.Errorf("failed to retract vote: %w", err)
			}
			if err := adjustVoteCount(tx, questionID, voteType, -1); err != nil {
				return err
			}
			userVote = ""
			return nil

		default:
			// Opposite type moves exactly one count across.
			if err := tx.Model(&existing).Update("vote_type", voteType).Error; err != nil {
				return fmt.Errorf("failed to flip vote: %w", err)
			}
			if err := adjustVoteCount(tx, questionID, existing.VoteType, -1); err != nil {
				return err
			}
			if err := adjustVoteCount(tx, questionID, voteType, +1); err != nil {
				return err
			}
			userVote = voteType
			return nil
		}
	})
	if err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Str("userID", userID.String()).Msg("CastVote: transaction failed")
		return nil, err
	}

	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		return nil, fmt.Errorf("error reloading question %d after vote: %w", questionID, err)
	}
	return &dto.VoteResultDTO{
		QuestionID: question.ID,
		Upvotes:    question.Upvotes,
		Downvotes:  question.Downvotes,
		UserVote:   userVote,
	}, nil
}

func adjustVoteCount(tx *gorm.DB, questionID uint, voteType string, delta int) error {
	column := "upvotes"
	if voteType == model.VoteDown {
		column = "downvotes"
	}
	if err := tx.Model(&model.QAQuestion{}).Where("id = ?", questionID).
		Update(column, gorm.Expr(column+" + ?", delta)).Error; err != nil {
		return fmt.Errorf("failed to adjust %s: %w", column, err)
	}
	return nil
}
