package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/lshigami/Quokka/internal/repository"
	"github.com/rs/zerolog/log"
)

// CatalogService manages the course/chapter/exercise hierarchy.
type CatalogService interface {
	CreateCourse(req dto.CourseCreateDTO) (*dto.CourseDTO, error)
	CreateCategory(req dto.CategoryCreateDTO) (*dto.CategoryDTO, error)
	CreateExercise(req dto.ExerciseCreateDTO) (*dto.ExerciseDTO, error)
	ListCourses() ([]dto.CourseDTO, error)
	ListCategories(courseID uint) ([]dto.CategoryDTO, error)
	ListExercises(courseID uint) ([]dto.ExerciseDTO, error)
}

type catalogService struct {
	courseRepo   repository.CourseRepository
	categoryRepo repository.CategoryRepository
	exerciseRepo repository.ExerciseRepository
}

func NewCatalogService(
	courseRepo repository.CourseRepository,
	categoryRepo repository.CategoryRepository,
	exerciseRepo repository.ExerciseRepository,
) CatalogService {
	return &catalogService{
		courseRepo:   courseRepo,
		categoryRepo: categoryRepo,
		exerciseRepo: exerciseRepo,
	}
}

func (s *catalogService) CreateCourse(req dto.CourseCreateDTO) (*dto.CourseDTO, error) {
	course := model.Course{Title: req.Title, Description: req.Description}
	if err := s.courseRepo.Create(&course); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateCourse: database error")
		return nil, fmt.Errorf("database error creating course: %w", err)
	}
	var resp dto.CourseDTO
	if err := copier.Copy(&resp, &course); err != nil {
		return nil, fmt.Errorf("error preparing course response: %w", err)
	}
	return &resp, nil
}

func (s *catalogService) CreateCategory(req dto.CategoryCreateDTO) (*dto.CategoryDTO, error) {
	if _, err := s.courseRepo.FindByID(req.CourseID); err != nil {
		return nil, fmt.Errorf("course not found with ID %d: %w", req.CourseID, err)
	}
	category := model.Category{
		CourseID:   req.CourseID,
		Title:      req.Title,
		OrderIndex: req.OrderIndex,
	}
	if err := s.categoryRepo.Create(&category); err != nil {
		log.Error().Err(err).Uint("courseID", req.CourseID).Msg("CreateCategory: database error")
		return nil, fmt.Errorf("database error creating category: %w", err)
	}
	var resp dto.CategoryDTO
	if err := copier.Copy(&resp, &category); err != nil {
		return nil, fmt.Errorf("error preparing category response: %w", err)
	}
	return &resp, nil
}

func (s *catalogService) CreateExercise(req dto.ExerciseCreateDTO) (*dto.ExerciseDTO, error) {
	category, err := s.categoryRepo.FindByID(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("category not found with ID %d: %w", req.CategoryID, err)
	}
	if category.CourseID != req.CourseID {
		return nil, fmt.Errorf("category %d does not belong to course %d", req.CategoryID, req.CourseID)
	}
	if req.QuestionCountMax < req.QuestionCountMin {
		return nil, fmt.Errorf("question_count_max %d is below question_count_min %d", req.QuestionCountMax, req.QuestionCountMin)
	}

	var exercise model.Exercise
	if err := copier.Copy(&exercise, &req); err != nil {
		return nil, fmt.Errorf("error preparing exercise model: %w", err)
	}
	if err := s.exerciseRepo.Create(&exercise); err != nil {
		log.Error().Err(err).Uint("courseID", req.CourseID).Msg("CreateExercise: database error")
		return nil, fmt.Errorf("database error creating exercise: %w", err)
	}
	var resp dto.ExerciseDTO
	if err := copier.Copy(&resp, &exercise); err != nil {
		return nil, fmt.Errorf("error preparing exercise response: %w", err)
	}
	return &resp, nil
}

func (s *catalogService) ListCourses() ([]dto.CourseDTO, error) {
	courses, err := s.courseRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("ListCourses: repository error")
		return nil, fmt.Errorf("error fetching courses: %w", err)
	}
	dtos := make([]dto.CourseDTO, len(courses))
	for i := range courses {
		if err := copier.Copy(&dtos[i], &courses[i]); err != nil {
			return nil, fmt.Errorf("error preparing course response: %w", err)
		}
	}
	return dtos, nil
}

func (s *catalogService) ListCategories(courseID uint) ([]dto.CategoryDTO, error) {
	categories, err := s.categoryRepo.FindByCourseID(courseID)
	if err != nil {
		log.Error().Err(err).Uint("courseID", courseID).Msg("ListCategories: repository error")
		return nil, fmt.Errorf("error fetching categories for course %d: %w", courseID, err)
	}
	dtos := make([]dto.CategoryDTO, len(categories))
	for i := range categories {
		if err := copier.Copy(&dtos[i], &categories[i]); err != nil {
			return nil, fmt.Errorf("error preparing category response: %w", err)
		}
	}
	return dtos, nil
}

func (s *catalogService) ListExercises(courseID uint) ([]dto.ExerciseDTO, error) {
	exercises, err := s.exerciseRepo.FindByCourseID(courseID)
	if err != nil {
		log.Error().Err(err).Uint("courseID", courseID).Msg("ListExercises: repository error")
		return nil, fmt.Errorf("error fetching exercises for course %d: %w", courseID, err)
	}
	dtos := make([]dto.ExerciseDTO, len(exercises))
	for i := range exercises {
		if err := copier.Copy(&dtos[i], &exercises[i]); err != nil {
			return nil, fmt.Errorf("error preparing exercise response: %w", err)
		}
	}
	return dtos, nil
}
