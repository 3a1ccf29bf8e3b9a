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

type NoteController struct {
	noteService service.NoteService
}

func NewNoteController(noteService service.NoteService) *NoteController {
	return &NoteController{noteService: noteService}
}

// CreateNote godoc
// @Summary Create a study note
// @Tags Notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param note body dto.NoteCreateDTO true "Note"
// @Success 201 {object} dto.NoteDTO
// @Router /notes [post]
func (c *NoteController) CreateNote(ctx *gin.Context) {
	studentID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing authenticated user"})
		return
	}
	var req dto.NoteCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	note, err := c.noteService.CreateNote(studentID, req)
	if err != nil {
		log.Warn().Err(err).Uint("courseID", req.CourseID).Msg("CreateNote: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, note)
}

// ListNotes godoc
// @Summary List the caller's notes
// @Tags Notes
// @Produce json
// @Security BearerAuth
// @Param course_id query int false "Filter by course"
// @Success 200 {array} dto.NoteDTO
// @Router /notes [get]
func (c *NoteController) ListNotes(ctx *gin.Context) {
	studentID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing authenticated user"})
		return
	}
	var courseID *uint
	if courseIDStr := ctx.Query("course_id"); courseIDStr != "" {
		val, err := strconv.ParseUint(courseIDStr, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Course ID format in query"})
			return
		}
		id := uint(val)
		courseID = &id
	}

	notes, err := c.noteService.ListNotes(studentID, courseID)
	if err != nil {
		log.Error().Err(err).Msg("ListNotes: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, notes)
}

// UpdateNote godoc
// @Summary Update one of the caller's notes
// @Tags Notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param note_id path int true "Note ID"
// @Param note body dto.NoteUpdateDTO true "Note"
// @Success 200 {object} dto.NoteDTO
// @Failure 403 {object} dto.ErrorResponse "Note belongs to another student"
// @Router /notes/{note_id} [put]
func (c *NoteController) UpdateNote(ctx *gin.Context) {
	studentID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing authenticated user"})
		return
	}
	noteID, err := strconv.ParseUint(ctx.Param("note_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Note ID format"})
		return
	}
	var req dto.NoteUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	note, err := c.noteService.UpdateNote(studentID, uint(noteID), req)
	if err != nil {
		log.Warn().Err(err).Uint64("noteID", noteID).Msg("UpdateNote: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, note)
}

// DeleteNote godoc
// @Summary Delete one of the caller's notes
// @Tags Notes
// @Security BearerAuth
// @Param note_id path int true "Note ID"
// @Success 204 "Deleted"
// @Failure 403 {object} dto.ErrorResponse "Note belongs to another student"
// @Router /notes/{note_id} [delete]
func (c *NoteController) DeleteNote(ctx *gin.Context) {
	studentID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing authenticated user"})
		return
	}
	noteID, err := strconv.ParseUint(ctx.Param("note_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Note ID format"})
		return
	}

	if err := c.noteService.DeleteNote(studentID, uint(noteID)); err != nil {
		log.Warn().Err(err).Uint64("noteID", noteID).Msg("DeleteNote: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
