package service

import (
	"testing"

	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/lshigami/Quokka/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newNoteService(db *gorm.DB) NoteService {
	return NewNoteService(
		repository.NewNoteRepository(db),
		repository.NewCourseRepository(db),
	)
}

func TestNoteLifecycle(t *testing.T) {
	db := newTestDB(t)
	course, _, _, ex1, _ := seedCatalog(t, db)
	student := newStudent(t)
	svc := newNoteService(db)

	note, err := svc.CreateNote(student, dto.NoteCreateDTO{
		CourseID:   course.ID,
		ExerciseID: &ex1.ID,
		Title:      "Slices vs arrays",
		Body:       "append may reallocate",
	})
	require.NoError(t, err)
	require.NotNil(t, note.ExerciseID)

	updated, err := svc.UpdateNote(student, note.ID, dto.NoteUpdateDTO{
		Title: "Slices vs arrays, revisited",
		Body:  "copy on grow",
	})
	require.NoError(t, err)
	require.Equal(t, "Slices vs arrays, revisited", updated.Title)

	notes, err := svc.ListNotes(student, &course.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)

	require.NoError(t, svc.DeleteNote(student, note.ID))
	notes, err = svc.ListNotes(student, &course.ID)
	require.NoError(t, err)
	require.Empty(t, notes)
}

func TestNoteOwnershipEnforced(t *testing.T) {
	db := newTestDB(t)
	course, _, _, _, _ := seedCatalog(t, db)
	owner := newStudent(t)
	stranger := newStudent(t)
	svc := newNoteService(db)

	note, err := svc.CreateNote(owner, dto.NoteCreateDTO{
		CourseID: course.ID,
		Title:    "private",
	})
	require.NoError(t, err)

	_, err = svc.UpdateNote(stranger, note.ID, dto.NoteUpdateDTO{Title: "hijacked"})
	require.ErrorIs(t, err, ErrNotOwner)
	require.ErrorIs(t, svc.DeleteNote(stranger, note.ID), ErrNotOwner)

	// Listing is scoped to the caller.
	notes, err := svc.ListNotes(stranger, nil)
	require.NoError(t, err)
	require.Empty(t, notes)

	var reloaded model.Note
	require.NoError(t, db.First(&reloaded, note.ID).Error)
	require.Equal(t, "private", reloaded.Title)
}
