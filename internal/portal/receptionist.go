package portal

import (
	"context"

	"github.com/mamisoa/clinic-portal/internal/models"
)

// Create registers a new patient and refetches the list on success. The
// outcome lands in the add-form notification scope.
func (c *Controller) Create(ctx context.Context, input models.PatientInput) bool {
	c.FormNotice = models.Notification{}
	if c.role != models.RoleReceptionist {
		c.FormNotice = models.Errorf("Permission denied.")
		return false
	}
	if !c.beginMutation(&c.FormNotice) {
		return false
	}
	defer c.endMutation()

	if err := c.api.CreatePatient(ctx, c.token(), input); err != nil {
		c.FormNotice = models.Errorf(failureMessage(err,
			"Failed to add patient.",
			"An error occurred while adding patient."))
		return false
	}
	c.FormNotice = models.Success("Patient added successfully!")
	c.LoadList(ctx)
	return true
}

// BeginEdit fetches the record by id before opening the edit modal, so the
// form starts from the authoritative current record even if the rendered
// list is stale.
func (c *Controller) BeginEdit(ctx context.Context, id uint) bool {
	c.EditNotice = models.Notification{}
	if c.role != models.RoleReceptionist {
		c.ListNotice = models.Errorf("Permission denied.")
		return false
	}

	patient, err := c.api.GetPatient(ctx, c.token(), id)
	if err != nil {
		c.ListNotice = models.Errorf(failureMessage(err,
			"Failed to load patient for editing.",
			"An error occurred loading patient for edit."))
		return false
	}
	working := patient
	c.editPatient = &working
	c.editOpen = true
	return true
}

// EditOpen reports whether the edit modal is open.
func (c *Controller) EditOpen() bool { return c.editOpen }

// EditingPatient returns the working copy backing the open edit modal, or
// nil when no edit is in progress. Mutations to it are discarded on cancel.
func (c *Controller) EditingPatient() *models.Patient { return c.editPatient }

// CancelEdit discards the working copy and closes the modal.
func (c *Controller) CancelEdit() {
	c.editPatient = nil
	c.editOpen = false
}

// SubmitEdit commits the working copy. On success the modal closes and the
// list is refetched; on failure the modal stays open with the error in its
// own notification scope and the list is untouched.
func (c *Controller) SubmitEdit(ctx context.Context) bool {
	c.EditNotice = models.Notification{}
	if c.editPatient == nil {
		return false
	}
	if !c.beginMutation(&c.EditNotice) {
		return false
	}
	defer c.endMutation()

	input := models.InputFromPatient(*c.editPatient)
	if err := c.api.UpdatePatient(ctx, c.token(), c.editPatient.ID, input); err != nil {
		c.EditNotice = models.Errorf(failureMessage(err,
			"Failed to update patient.",
			"An error occurred while updating patient."))
		return false
	}
	c.EditNotice = models.Success("Patient updated successfully!")
	c.editPatient = nil
	c.editOpen = false
	c.LoadList(ctx)
	return true
}

// BeginDelete opens the delete confirmation modal for the given patient.
func (c *Controller) BeginDelete(id uint, name string) {
	if c.role != models.RoleReceptionist {
		c.ListNotice = models.Errorf("Permission denied.")
		return
	}
	c.deleteTarget = &DeleteTarget{ID: id, Name: name}
	c.deleteOpen = true
	c.DeleteNotice = models.Notification{}
}

// DeleteOpen reports whether the delete confirmation modal is open.
func (c *Controller) DeleteOpen() bool { return c.deleteOpen }

// DeletingPatient returns the target of the open confirmation, or nil.
func (c *Controller) DeletingPatient() *DeleteTarget { return c.deleteTarget }

// CancelDelete closes the confirmation without touching anything.
func (c *Controller) CancelDelete() {
	c.deleteTarget = nil
	c.deleteOpen = false
}

// ConfirmDelete performs the delete. On success the modal closes and the
// list is refetched; on failure the modal stays open showing the server
// message so the action can be retried or cancelled.
func (c *Controller) ConfirmDelete(ctx context.Context) bool {
	c.DeleteNotice = models.Notification{}
	if c.deleteTarget == nil {
		return false
	}
	if !c.beginMutation(&c.DeleteNotice) {
		return false
	}
	defer c.endMutation()

	if err := c.api.DeletePatient(ctx, c.token(), c.deleteTarget.ID); err != nil {
		c.DeleteNotice = models.Errorf(failureMessage(err,
			"Failed to delete patient.",
			"An error occurred while deleting patient."))
		return false
	}
	c.DeleteNotice = models.Success("Patient deleted successfully!")
	c.deleteTarget = nil
	c.deleteOpen = false
	c.LoadList(ctx)
	return true
}
