package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Quokka/internal/controller"
	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/middleware"
	"github.com/lshigami/Quokka/internal/service"
	"github.com/rs/zerolog/log"
)

type QAController struct {
	qaService   service.QAService
	voteService service.VoteService
}

func NewQAController(qaService service.QAService, voteService service.VoteService) *QAController {
	return &QAController{qaService: qaService, voteService: voteService}
}

// AskQuestion godoc
// @Summary Post a question to a course's Q&A area
// @Description The question starts in pending state and is listed only after moderation approves it.
// @Tags Q&A
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question body dto.QAQuestionCreateDTO true "Question"
// @Success 201 {object} dto.QAQuestionDTO
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /qa/questions [post]
func (c *QAController) AskQuestion(ctx *gin.Context) {
	studentID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing authenticated user"})
		return
	}
	var req dto.QAQuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	question, err := c.qaService.AskQuestion(studentID, req)
	if err != nil {
		log.Warn().Err(err).Uint("courseID", req.CourseID).Msg("AskQuestion: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// AnswerQuestion godoc
// @Summary Answer an approved Q&A question
// @Tags Q&A
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question_id path int true "Question ID"
// @Param answer body dto.QAAnswerCreateDTO true "Answer"
// @Success 201 {object} dto.QAAnswerDTO
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 422 {object} dto.ErrorResponse "Question not approved"
// @Router /qa/questions/{question_id}/answers [post]
func (c *QAController) AnswerQuestion(ctx *gin.Context) {
	studentID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing authenticated user"})
		return
	}
	questionID, err := strconv.ParseUint(ctx.Param("question_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Question ID format"})
		return
	}
	var req dto.QAAnswerCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	answer, err := c.qaService.AnswerQuestion(studentID, uint(questionID), req)
	if err != nil {
		log.Warn().Err(err).Uint64("questionID", questionID).Msg("AnswerQuestion: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, answer)
}

// CastVote godoc
// @Summary Vote on a Q&A question
// @Description One vote per user per question. Repeating the same vote retracts it; the opposite vote flips it.
// @Tags Q&A
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question_id path int true "Question ID"
// @Param vote body dto.CastVoteDTO true "Vote type: up or down"
// @Success 200 {object} dto.VoteResultDTO
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /qa/questions/{question_id}/votes [post]
func (c *QAController) CastVote(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing authenticated user"})
		return
	}
	questionID, err := strconv.ParseUint(ctx.Param("question_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Question ID format"})
		return
	}
	var req dto.CastVoteDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.voteService.CastVote(userID, uint(questionID), req.VoteType)
	if err != nil {
		log.Warn().Err(err).Uint64("questionID", questionID).Str("voteType", req.VoteType).Msg("CastVote: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// AcceptAnswer godoc
// @Summary Accept an answer to one's own question
// @Tags Q&A
// @Produce json
// @Security BearerAuth
// @Param question_id path int true "Question ID"
// @Param answer_id path int true "Answer ID"
// @Success 204 "Accepted"
// @Failure 403 {object} dto.ErrorResponse "Not the question author"
// @Failure 422 {object} dto.ErrorResponse "Answer not approved for this question"
// @Router /qa/questions/{question_id}/answers/{answer_id}/accept [post]
func (c *QAController) AcceptAnswer(ctx *gin.Context) {
	studentID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing authenticated user"})
		return
	}
	questionID, err := strconv.ParseUint(ctx.Param("question_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Question ID format"})
		return
	}
	answerID, err := strconv.ParseUint(ctx.Param("answer_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Answer ID format"})
		return
	}

	if err := c.qaService.AcceptAnswer(studentID, uint(questionID), uint(answerID)); err != nil {
		log.Warn().Err(err).Uint64("questionID", questionID).Uint64("answerID", answerID).Msg("AcceptAnswer: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListCourseQuestions godoc
// @Summary List approved Q&A questions of a course
// @Tags Q&A
// @Produce json
// @Security BearerAuth
// @Param course_id path int true "Course ID"
// @Success 200 {array} dto.QAQuestionDTO
// @Router /courses/{course_id}/qa [get]
func (c *QAController) ListCourseQuestions(ctx *gin.Context) {
	courseID, err := strconv.ParseUint(ctx.Param("course_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Course ID format"})
		return
	}

	questions, err := c.qaService.ListCourseQuestions(uint(courseID))
	if err != nil {
		log.Error().Err(err).Uint64("courseID", courseID).Msg("ListCourseQuestions: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}
