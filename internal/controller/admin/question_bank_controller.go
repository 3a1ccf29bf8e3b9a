package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Quokka/internal/controller"
	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/repository"
	"github.com/lshigami/Quokka/internal/service"
	"github.com/rs/zerolog/log"
)

type QuestionBankController struct {
	bankService  service.QuestionBankService
	draftService service.QuestionDraftService
}

func NewQuestionBankController(bankService service.QuestionBankService, draftService service.QuestionDraftService) *QuestionBankController {
	return &QuestionBankController{bankService: bankService, draftService: draftService}
}

// CreateQuestion godoc
// @Summary (Admin) Add a question to the bank
// @Tags Admin - Question Bank
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question body dto.QuestionCreateDTO true "Question with answer key"
// @Success 201 {object} dto.QuestionBankItemDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /admin/questions [post]
func (c *QuestionBankController) CreateQuestion(ctx *gin.Context) {
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateQuestion: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	question, err := c.bankService.CreateQuestion(req)
	if err != nil {
		log.Error().Err(err).Uint("courseID", req.CourseID).Msg("Admin CreateQuestion: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// UpdateQuestion godoc
// @Summary (Admin) Edit a bank question
// @Description Rejected once graded answers reference the question.
// @Tags Admin - Question Bank
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question_id path int true "Question ID"
// @Param question body dto.QuestionUpdateDTO true "Question fields"
// @Success 200 {object} dto.QuestionBankItemDTO
// @Failure 409 {object} dto.ErrorResponse "Question referenced by answers"
// @Router /admin/questions/{question_id} [put]
func (c *QuestionBankController) UpdateQuestion(ctx *gin.Context) {
	questionID, err := strconv.ParseUint(ctx.Param("question_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Question ID format"})
		return
	}
	var req dto.QuestionUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	question, err := c.bankService.UpdateQuestion(uint(questionID), req)
	if err != nil {
		log.Warn().Err(err).Uint64("questionID", questionID).Msg("Admin UpdateQuestion: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// ListQuestions godoc
// @Summary (Admin) List bank questions
// @Tags Admin - Question Bank
// @Produce json
// @Security BearerAuth
// @Param course_id query int false "Filter by course"
// @Param category_id query int false "Filter by category"
// @Param exercise_id query int false "Filter by exercise"
// @Success 200 {array} dto.QuestionBankItemDTO
// @Router /admin/questions [get]
func (c *QuestionBankController) ListQuestions(ctx *gin.Context) {
	var filter repository.QuestionFilter
	var parseErr error
	filter.CourseID, parseErr = optionalUintQuery(ctx, "course_id")
	if parseErr == nil {
		filter.CategoryID, parseErr = optionalUintQuery(ctx, "category_id")
	}
	if parseErr == nil {
		filter.ExerciseID, parseErr = optionalUintQuery(ctx, "exercise_id")
	}
	if parseErr != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: parseErr.Error()})
		return
	}

	questions, err := c.bankService.ListQuestions(filter)
	if err != nil {
		log.Error().Err(err).Msg("Admin ListQuestions: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// DeleteQuestion godoc
// @Summary (Admin) Delete a bank question
// @Description Rejected once graded answers reference the question.
// @Tags Admin - Question Bank
// @Security BearerAuth
// @Param question_id path int true "Question ID"
// @Success 204 "Deleted"
// @Failure 409 {object} dto.ErrorResponse "Question referenced by answers"
// @Router /admin/questions/{question_id} [delete]
func (c *QuestionBankController) DeleteQuestion(ctx *gin.Context) {
	questionID, err := strconv.ParseUint(ctx.Param("question_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Question ID format"})
		return
	}

	if err := c.bankService.DeleteQuestion(uint(questionID)); err != nil {
		log.Warn().Err(err).Uint64("questionID", questionID).Msg("Admin DeleteQuestion: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DraftQuestions godoc
// @Summary (Admin) Draft questions with AI
// @Description Returns AI-drafted question candidates for review; nothing is written to the bank.
// @Tags Admin - Question Bank
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DraftQuestionsDTO true "Topic and count"
// @Success 200 {array} dto.QuestionDraftDTO
// @Failure 500 {object} dto.ErrorResponse "Drafting unavailable or failed"
// @Router /admin/questions/drafts [post]
func (c *QuestionBankController) DraftQuestions(ctx *gin.Context) {
	var req dto.DraftQuestionsDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	drafts, err := c.draftService.DraftQuestions(req.Topic, req.Count)
	if err != nil {
		log.Error().Err(err).Str("topic", req.Topic).Msg("Admin DraftQuestions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to draft questions", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, drafts)
}

func optionalUintQuery(ctx *gin.Context, name string) (*uint, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, nil
	}
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, err
	}
	id := uint(val)
	return &id, nil
}
