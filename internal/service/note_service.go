package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/lshigami/Quokka/internal/repository"
	"github.com/rs/zerolog/log"
)

// NoteService handles private study notes. Every operation checks that the
// note belongs to the requesting student.
type NoteService interface {
	CreateNote(studentID uuid.UUID, req dto.NoteCreateDTO) (*dto.NoteDTO, error)
	UpdateNote(studentID uuid.UUID, noteID uint, req dto.NoteUpdateDTO) (*dto.NoteDTO, error)
	ListNotes(studentID uuid.UUID, courseID *uint) ([]dto.NoteDTO, error)
	DeleteNote(studentID uuid.UUID, noteID uint) error
}

type noteService struct {
	noteRepo   repository.NoteRepository
	courseRepo repository.CourseRepository
}

func NewNoteService(noteRepo repository.NoteRepository, courseRepo repository.CourseRepository) NoteService {
	return &noteService{noteRepo: noteRepo, courseRepo: courseRepo}
}

func (s *noteService) CreateNote(studentID uuid.UUID, req dto.NoteCreateDTO) (*dto.NoteDTO, error) {
	if _, err := s.courseRepo.FindByID(req.CourseID); err != nil {
		return nil, fmt.Errorf("course not found with ID %d: %w", req.CourseID, err)
	}
	note := model.Note{
		StudentID:  studentID,
		CourseID:   req.CourseID,
		ExerciseID: req.ExerciseID,
		Title:      req.Title,
		Body:       req.Body,
	}
	if err := s.noteRepo.Create(&note); err != nil {
		log.Error().Err(err).Uint("courseID", req.CourseID).Msg("CreateNote: database error")
		return nil, fmt.Errorf("database error creating note: %w", err)
	}
	return toNoteDTO(&note)
}

func (s *noteService) UpdateNote(studentID uuid.UUID, noteID uint, req dto.NoteUpdateDTO) (*dto.NoteDTO, error) {
	note, err := s.findOwnedNote(studentID, noteID)
	if err != nil {
		return nil, err
	}
	note.Title = req.Title
	note.Body = req.Body
	if err := s.noteRepo.Update(note); err != nil {
		log.Error().Err(err).Uint("noteID", noteID).Msg("UpdateNote: database error")
		return nil, fmt.Errorf("database error updating note %d: %w", noteID, err)
	}
	return toNoteDTO(note)
}

func (s *noteService) ListNotes(studentID uuid.UUID, courseID *uint) ([]dto.NoteDTO, error) {
	notes, err := s.noteRepo.FindAllByStudent(studentID, courseID)
	if err != nil {
		log.Error().Err(err).Str("studentID", studentID.String()).Msg("ListNotes: repository error")
		return nil, fmt.Errorf("error fetching notes: %w", err)
	}
	dtos := make([]dto.NoteDTO, len(notes))
	for i := range notes {
		item, err := toNoteDTO(&notes[i])
		if err != nil {
			return nil, err
		}
		dtos[i] = *item
	}
	return dtos, nil
}

func (s *noteService) DeleteNote(studentID uuid.UUID, noteID uint) error {
	if _, err := s.findOwnedNote(studentID, noteID); err != nil {
		return err
	}
	if err := s.noteRepo.Delete(noteID); err != nil {
		log.Error().Err(err).Uint("noteID", noteID).Msg("DeleteNote: database error")
		return fmt.Errorf("database error deleting note %d: %w", noteID, err)
	}
	return nil
}

func (s *noteService) findOwnedNote(studentID uuid.UUID, noteID uint) (*model.Note, error) {
	note, err := s.noteRepo.FindByID(noteID)
	if err != nil {
		return nil, fmt.Errorf("note not found with ID %d: %w", noteID, err)
	}
	if note.StudentID != studentID {
		return nil, fmt.Errorf("note %d: %w", noteID, ErrNotOwner)
	}
	return note, nil
}

func toNoteDTO(note *model.Note) (*dto.NoteDTO, error) {
	var resp dto.NoteDTO
	if err := copier.Copy(&resp, note); err != nil {
		return nil, fmt.Errorf("error preparing note response: %w", err)
	}
	return &resp, nil
}
