package admin

import (
	"net/http"

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

// CreateCourse godoc
// @Summary (Admin) Create a course
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param course body dto.CourseCreateDTO true "Course"
// @Success 201 {object} dto.CourseDTO
// @Router /admin/courses [post]
func (c *CatalogController) CreateCourse(ctx *gin.Context) {
	var req dto.CourseCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	course, err := c.catalogService.CreateCourse(req)
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Admin CreateCourse: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, course)
}

// CreateCategory godoc
// @Summary (Admin) Create a chapter within a course
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body dto.CategoryCreateDTO true "Category with explicit chapter order"
// @Success 201 {object} dto.CategoryDTO
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /admin/categories [post]
func (c *CatalogController) CreateCategory(ctx *gin.Context) {
	var req dto.CategoryCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	category, err := c.catalogService.CreateCategory(req)
	if err != nil {
		log.Error().Err(err).Uint("courseID", req.CourseID).Msg("Admin CreateCategory: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, category)
}

// CreateExercise godoc
// @Summary (Admin) Create an exercise with its quiz configuration
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exercise body dto.ExerciseCreateDTO true "Exercise with question-count bounds and passing score"
// @Success 201 {object} dto.ExerciseDTO
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Router /admin/exercises [post]
func (c *CatalogController) CreateExercise(ctx *gin.Context) {
	var req dto.ExerciseCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	exercise, err := c.catalogService.CreateExercise(req)
	if err != nil {
		log.Error().Err(err).Uint("courseID", req.CourseID).Msg("Admin CreateExercise: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, exercise)
}
