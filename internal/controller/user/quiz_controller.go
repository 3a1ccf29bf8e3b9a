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

type QuizController struct {
	generatorService  service.QuizGeneratorService
	submissionService service.QuizSubmissionService
	retakeService     service.QuizRetakeService
}

func NewQuizController(
	generatorService service.QuizGeneratorService,
	submissionService service.QuizSubmissionService,
	retakeService service.QuizRetakeService,
) *QuizController {
	return &QuizController{
		generatorService:  generatorService,
		submissionService: submissionService,
		retakeService:     retakeService,
	}
}

// GenerateQuiz godoc
// @Summary Start a new quiz attempt for an exercise
// @Description Draws a random question set for the exercise and creates an in-progress attempt. The answer key is never included.
// @Tags Quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exercise_id path int true "Exercise ID"
// @Param quiz_data body dto.GenerateQuizDTO true "Quiz type: chapter or progress"
// @Success 201 {object} dto.GeneratedQuizDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Exercise not found"
// @Failure 422 {object} dto.ErrorResponse "No eligible questions"
// @Router /exercises/{exercise_id}/quiz-attempts [post]
func (c *QuizController) GenerateQuiz(ctx *gin.Context) {
	studentID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing authenticated user"})
		return
	}
	exerciseID, err := strconv.ParseUint(ctx.Param("exercise_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Exercise ID format"})
		return
	}
	var req dto.GenerateQuizDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	quiz, err := c.generatorService.Generate(studentID, uint(exerciseID), req.QuizType)
	if err != nil {
		log.Warn().Err(err).Uint64("exerciseID", exerciseID).Str("quizType", req.QuizType).Msg("GenerateQuiz: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, quiz)
}

// SubmitQuiz godoc
// @Summary Submit all answers for an attempt
// @Description Grades every answer against the attempt's fixed question list and completes the attempt exactly once. Re-submission is rejected.
// @Tags Quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param attempt_id path int true "Attempt ID"
// @Param submission body dto.QuizSubmitDTO true "Answer batch covering every question exactly once"
// @Success 200 {object} dto.GradedAttemptDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt already completed"
// @Failure 422 {object} dto.ErrorResponse "Validation failure (count mismatch, duplicates, unknown question)"
// @Router /quiz-attempts/{attempt_id}/submission [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	studentID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing authenticated user"})
		return
	}
	attemptID, err := strconv.ParseUint(ctx.Param("attempt_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Attempt ID format"})
		return
	}
	var req dto.QuizSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	graded, err := c.submissionService.Submit(studentID, uint(attemptID), req)
	if err != nil {
		log.Warn().Err(err).Uint64("attemptID", attemptID).Msg("SubmitQuiz: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, graded)
}

// RetakeQuiz godoc
// @Summary Retake a quiz
// @Description Creates a brand-new attempt reusing the original attempt's question set, reshuffled for display. The original attempt is untouched.
// @Tags Quiz
// @Produce json
// @Security BearerAuth
// @Param attempt_id path int true "Original Attempt ID"
// @Success 201 {object} dto.GeneratedQuizDTO
// @Failure 403 {object} dto.ErrorResponse "Attempt belongs to another student"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /quiz-attempts/{attempt_id}/retake [post]
func (c *QuizController) RetakeQuiz(ctx *gin.Context) {
	studentID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing authenticated user"})
		return
	}
	attemptID, err := strconv.ParseUint(ctx.Param("attempt_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Attempt ID format"})
		return
	}

	quiz, err := c.retakeService.Retake(studentID, uint(attemptID))
	if err != nil {
		log.Warn().Err(err).Uint64("attemptID", attemptID).Msg("RetakeQuiz: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, quiz)
}

// GetAttempt godoc
// @Summary Get one attempt with its review
// @Description Returns the attempt and, once it is completed, the per-question correctness review.
// @Tags Quiz
// @Produce json
// @Security BearerAuth
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.GradedAttemptDTO
// @Failure 403 {object} dto.ErrorResponse "Attempt belongs to another student"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /quiz-attempts/{attempt_id} [get]
func (c *QuizController) GetAttempt(ctx *gin.Context) {
	studentID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing authenticated user"})
		return
	}
	attemptID, err := strconv.ParseUint(ctx.Param("attempt_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Attempt ID format"})
		return
	}

	review, err := c.submissionService.GetAttemptReview(studentID, uint(attemptID))
	if err != nil {
		log.Warn().Err(err).Uint64("attemptID", attemptID).Msg("GetAttempt: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, review)
}

// GetMyAttempts godoc
// @Summary List the caller's attempts for an exercise
// @Tags Quiz
// @Produce json
// @Security BearerAuth
// @Param exercise_id path int true "Exercise ID"
// @Success 200 {array} dto.QuizAttemptDTO
// @Router /exercises/{exercise_id}/my-attempts [get]
func (c *QuizController) GetMyAttempts(ctx *gin.Context) {
	studentID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing authenticated user"})
		return
	}
	exerciseID, err := strconv.ParseUint(ctx.Param("exercise_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Exercise ID format"})
		return
	}

	attempts, err := c.submissionService.GetStudentAttempts(studentID, uint(exerciseID))
	if err != nil {
		log.Error().Err(err).Uint64("exerciseID", exerciseID).Msg("GetMyAttempts: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}
