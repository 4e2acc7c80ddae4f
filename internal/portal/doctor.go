package portal

import (
	"context"

	"github.com/mamisoa/clinic-portal/internal/models"
)

// BeginNotes opens the doctor notes modal with a working copy of the
// patient's notes and status. Unlike the receptionist edit flow this starts
// from the rendered row: the doctor only overwrites the two fields shown.
func (c *Controller) BeginNotes(id uint, name, notes, status string) {
	if c.role != models.RoleDoctor {
		c.ListNotice = models.Errorf("Permission denied.")
		return
	}
	if status == "" {
		status = models.StatusActive
	}
	c.notesDraft = &NotesDraft{ID: id, Name: name, DoctorNotes: notes, Status: status}
	c.notesOpen = true
	c.NotesNotice = models.Notification{}
}

// NotesOpen reports whether the notes modal is open.
func (c *Controller) NotesOpen() bool { return c.notesOpen }

// EditingNotes returns the working copy backing the open notes modal, or nil.
func (c *Controller) EditingNotes() *NotesDraft { return c.notesDraft }

// CancelNotes discards the draft and closes the modal.
func (c *Controller) CancelNotes() {
	c.notesDraft = nil
	c.notesOpen = false
}

// SubmitNotes commits the notes/status draft. On success the modal closes
// and the list is refetched; no local patch of the record is assumed before
// the refetch completes. On failure the modal stays open with the error.
func (c *Controller) SubmitNotes(ctx context.Context) bool {
	c.NotesNotice = models.Notification{}
	if c.notesDraft == nil {
		return false
	}
	if !c.beginMutation(&c.NotesNotice) {
		return false
	}
	defer c.endMutation()

	input := models.NotesInput{DoctorNotes: c.notesDraft.DoctorNotes, Status: c.notesDraft.Status}
	if err := c.api.UpdateDoctorNotes(ctx, c.token(), c.notesDraft.ID, input); err != nil {
		c.NotesNotice = models.Errorf(failureMessage(err,
			"Failed to update notes.",
			"An error occurred while updating notes."))
		return false
	}
	c.NotesNotice = models.Success("Doctor notes and status updated successfully!")
	c.notesDraft = nil
	c.notesOpen = false
	c.LoadList(ctx)
	return true
}
