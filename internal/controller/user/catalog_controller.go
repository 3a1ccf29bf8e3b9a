package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Quokka/internal/controller"
	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/service"
	"github.com/rs/zerolog/log"
)

type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// ListCourses godoc
// @Summary List available courses
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CourseDTO
// @Router /courses [get]
func (c *CatalogController) ListCourses(ctx *gin.Context) {
	courses, err := c.catalogService.ListCourses()
	if err != nil {
		log.Error().Err(err).Msg("ListCourses: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, courses)
}

// ListCategories godoc
// @Summary List a course's chapters in order
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param course_id path int true "Course ID"
// @Success 200 {array} dto.CategoryDTO
// @Router /courses/{course_id}/categories [get]
func (c *CatalogController) ListCategories(ctx *gin.Context) {
	courseID, err := strconv.ParseUint(ctx.Param("course_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Course ID format"})
		return
	}
	categories, err := c.catalogService.ListCategories(uint(courseID))
	if err != nil {
		log.Error().Err(err).Uint64("courseID", courseID).Msg("ListCategories: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

// ListExercises godoc
// @Summary List a course's exercises
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param course_id path int true "Course ID"
// @Success 200 {array} dto.ExerciseDTO
// @Router /courses/{course_id}/exercises [get]
func (c *CatalogController) ListExercises(ctx *gin.Context) {
	courseID, err := strconv.ParseUint(ctx.Param("course_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Course ID format"})
		return
	}
	exercises, err := c.catalogService.ListExercises(uint(courseID))
	if err != nil {
		log.Error().Err(err).Uint64("courseID", courseID).Msg("ListExercises: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exercises)
}
