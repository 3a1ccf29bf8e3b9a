package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Quokka/internal/controller"
	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/service"
	"github.com/rs/zerolog/log"
)

type QAModerationController struct {
	qaService service.QAService
}

func NewQAModerationController(qaService service.QAService) *QAModerationController {
	return &QAModerationController{qaService: qaService}
}

// ListPendingQuestions godoc
// @Summary (Admin) List Q&A questions awaiting moderation
// @Tags Admin - Q&A Moderation
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QAQuestionDTO
// @Router /admin/qa/pending [get]
func (c *QAModerationController) ListPendingQuestions(ctx *gin.Context) {
	questions, err := c.qaService.ListPendingQuestions()
	if err != nil {
		log.Error().Err(err).Msg("Admin ListPendingQuestions: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// ModerateQuestion godoc
// @Summary (Admin) Approve or reject a Q&A question
// @Tags Admin - Q&A Moderation
// @Accept json
// @Security BearerAuth
// @Param question_id path int true "Question ID"
// @Param moderation body dto.ModerateDTO true "approved or rejected"
// @Success 204 "Moderated"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/qa/questions/{question_id}/moderation [post]
func (c *QAModerationController) ModerateQuestion(ctx *gin.Context) {
	questionID, err := strconv.ParseUint(ctx.Param("question_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Question ID format"})
		return
	}
	var req dto.ModerateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if err := c.qaService.ModerateQuestion(uint(questionID), req.Status); err != nil {
		log.Warn().Err(err).Uint64("questionID", questionID).Msg("Admin ModerateQuestion: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ModerateAnswer godoc
// @Summary (Admin) Approve or reject a Q&A answer
// @Tags Admin - Q&A Moderation
// @Accept json
// @Security BearerAuth
// @Param answer_id path int true "Answer ID"
// @Param moderation body dto.ModerateDTO true "approved or rejected"
// @Success 204 "Moderated"
// @Failure 404 {object} dto.ErrorResponse "Answer not found"
// @Router /admin/qa/answers/{answer_id}/moderation [post]
func (c *QAModerationController) ModerateAnswer(ctx *gin.Context) {
	answerID, err := strconv.ParseUint(ctx.Param("answer_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Answer ID format"})
		return
	}
	var req dto.ModerateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if err := c.qaService.ModerateAnswer(uint(answerID), req.Status); err != nil {
		log.Warn().Err(err).Uint64("answerID", answerID).Msg("Admin ModerateAnswer: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
