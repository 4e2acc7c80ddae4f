package portal

import (
	"context"

	"github.com/mamisoa/clinic-portal/internal/api"
	"github.com/mamisoa/clinic-portal/internal/models"
	"github.com/mamisoa/clinic-portal/internal/session"
)

// PatientAPI is the backend surface the controllers consume.
type PatientAPI interface {
	ListPatients(ctx context.Context, token string) ([]models.Patient, error)
	GetPatient(ctx context.Context, token string, id uint) (models.Patient, error)
	CreatePatient(ctx context.Context, token string, input models.PatientInput) error
	UpdatePatient(ctx context.Context, token string, id uint, input models.PatientInput) error
	DeletePatient(ctx context.Context, token string, id uint) error
	UpdateDoctorNotes(ctx context.Context, token string, id uint, input models.NotesInput) error
}

// SessionSource provides read-only access to the current session. Controllers
// never write session state; only the session manager does.
type SessionSource interface {
	Current() session.Session
}

// DeleteTarget identifies the patient a delete confirmation is about.
type DeleteTarget struct {
	ID   uint
	Name string
}

// NotesDraft is the doctor's working copy while the notes modal is open.
type NotesDraft struct {
	ID          uint
	Name        string
	DoctorNotes string
	Status      string
}

// Controller orchestrates list-fetch, mutations and the refetch-after-mutate
// cycle for one portal. The displayed list is always either the last
// successfully fetched snapshot or the previous one plus an error notice,
// never a locally patched guess at post-mutation server state.
//
// A controller is driven from a single goroutine, matching the event-driven
// execution model of the UI in front of it.
type Controller struct {
	role     string
	api      PatientAPI
	sessions SessionSource

	patients   []models.Patient
	loading    bool
	searchTerm string
	inFlight   bool

	// Notification scopes, one per context as in the portal views.
	ListNotice   models.Notification
	FormNotice   models.Notification
	EditNotice   models.Notification
	DeleteNotice models.Notification
	NotesNotice  models.Notification

	editOpen    bool
	editPatient *models.Patient

	deleteOpen   bool
	deleteTarget *DeleteTarget

	notesOpen  bool
	notesDraft *NotesDraft
}

// NewReceptionist builds the receptionist controller: list, create, update
// and delete.
func NewReceptionist(client PatientAPI, sessions SessionSource) *Controller {
	return &Controller{role: models.RoleReceptionist, api: client, sessions: sessions}
}

// NewDoctor builds the doctor controller: list plus notes/status updates.
func NewDoctor(client PatientAPI, sessions SessionSource) *Controller {
	return &Controller{role: models.RoleDoctor, api: client, sessions: sessions}
}

// Role returns the portal role this controller serves.
func (c *Controller) Role() string { return c.role }

// Loading reports whether a list fetch is in progress.
func (c *Controller) Loading() bool { return c.loading }

// Patients returns the last successfully fetched snapshot.
func (c *Controller) Patients() []models.Patient { return c.patients }

// SetSearch updates the search term. Filtering is applied to the last-fetched
// list; changing the term never triggers a refetch.
func (c *Controller) SetSearch(term string) { c.searchTerm = term }

// Visible returns the snapshot filtered by the current search term.
func (c *Controller) Visible() []models.Patient {
	return Filter(c.patients, c.searchTerm)
}

func (c *Controller) token() string { return c.sessions.Current().Token }

// LoadList replaces the in-memory list with one full fetch. On failure the
// previous list stays visible behind an error notice.
func (c *Controller) LoadList(ctx context.Context) {
	c.loading = true
	c.ListNotice = models.Info("Loading patients...")

	patients, err := c.api.ListPatients(ctx, c.token())
	if err != nil {
		c.ListNotice = models.Errorf(failureMessage(err,
			"Failed to load patients.",
			"An error occurred while fetching patients."))
		c.loading = false
		return
	}
	c.patients = patients
	c.ListNotice = models.Notification{}
	c.loading = false
}

// beginMutation guards against a second submission while one is in flight.
// The reported outcome goes into the given notification scope.
func (c *Controller) beginMutation(scope *models.Notification) bool {
	if c.inFlight {
		*scope = models.Errorf("Another request is still in progress.")
		return false
	}
	c.inFlight = true
	return true
}

func (c *Controller) endMutation() { c.inFlight = false }

// failureMessage picks the text to surface for a failed call: the server's
// message verbatim when one was provided, the context fallback when the body
// had none, and the generic transport message when the request never
// completed.
func failureMessage(err error, fallback, transportMsg string) string {
	apiErr := api.AsError(err)
	if apiErr.Transport {
		return transportMsg
	}
	if apiErr.Message == "" {
		return fallback
	}
	return apiErr.Message
}
