package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/service"
	"gorm.io/gorm"
)

// StatusFromError maps service failures to HTTP statuses: not-found rows
// to 404, state conflicts to 409, validation to 422, ownership to 403.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrAttemptCompleted),
		errors.Is(err, service.ErrQuestionReferenced):
		return http.StatusConflict
	case errors.Is(err, service.ErrAnswerCountMismatch),
		errors.Is(err, service.ErrDuplicateAnswer),
		errors.Is(err, service.ErrUnknownQuestion),
		errors.Is(err, service.ErrEmptyQuestionBank),
		errors.Is(err, service.ErrQuestionNotApproved),
		errors.Is(err, service.ErrAnswerNotApproved):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrNotOwner):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes the standard error body for a service failure.
func RespondError(ctx *gin.Context, err error) {
	ctx.JSON(StatusFromError(err), dto.ErrorResponse{Message: err.Error()})
}
