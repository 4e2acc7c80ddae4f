package portal

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mamisoa/clinic-portal/internal/api"
	"github.com/mamisoa/clinic-portal/internal/models"
	"github.com/mamisoa/clinic-portal/internal/navigate"
	"github.com/mamisoa/clinic-portal/internal/session"
	"github.com/mamisoa/clinic-portal/internal/stubserver"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func startBackend(t *testing.T) *api.Client {
	t.Helper()
	srv := stubserver.New([]byte("test-secret"))
	if err := srv.SeedDefaults(); err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return api.NewClient(ts.URL, 2*time.Second)
}

// Login as a doctor, then ask the navigator what to do on the entry path:
// the session is fully populated and "/" redirects to "/doctor".
func TestLoginThenNavigateToDoctorPortal(t *testing.T) {
	client := startBackend(t)
	store := session.NewMemStore()
	sessions := session.NewManager(store, client)
	sessions.Initialize()

	msg, ok := sessions.Login(context.Background(), "doctor1", "password123")
	if !ok {
		t.Fatalf("login failed: %s", msg)
	}

	s := sessions.Current()
	if s.Token == "" || s.Username != "doctor1" || s.Role != models.RoleDoctor {
		t.Fatalf("session = %+v", s)
	}

	dec := navigate.Decide("/", s)
	if dec.Kind != navigate.KindRedirect || dec.Path != "/doctor" {
		t.Fatalf("decision = %+v, want redirect to /doctor", dec)
	}
	dec = navigate.Decide(dec.Path, s)
	if dec.Kind != navigate.KindShowPortal || dec.Role != models.RoleDoctor {
		t.Fatalf("decision after redirect = %+v", dec)
	}
}

// Full receptionist cycle against the live stub: load, create, refetch,
// edit via fetch-by-id, delete. The displayed list always equals the last
// full fetch.
func TestReceptionistFlowAgainstBackend(t *testing.T) {
	client := startBackend(t)
	sessions := session.NewManager(session.NewMemStore(), client)
	sessions.Initialize()
	if msg, ok := sessions.Login(context.Background(), "receptionist1", "password123"); !ok {
		t.Fatalf("login failed: %s", msg)
	}

	ctx := context.Background()
	ctrl := NewReceptionist(client, sessions)
	ctrl.LoadList(ctx)
	seeded := len(ctrl.Patients())
	if seeded == 0 {
		t.Fatal("seed fixtures missing")
	}

	if !ctrl.Create(ctx, models.PatientInput{
		FirstName: "Clara", LastName: "Voahangy", Contact: "032 00 111 22",
	}) {
		t.Fatalf("create failed: %+v", ctrl.FormNotice)
	}
	if len(ctrl.Patients()) != seeded+1 {
		t.Fatalf("list has %d records after create", len(ctrl.Patients()))
	}
	created := ctrl.Patients()[len(ctrl.Patients())-1]

	if !ctrl.BeginEdit(ctx, created.ID) {
		t.Fatalf("edit load failed: %+v", ctrl.ListNotice)
	}
	ctrl.EditingPatient().Address = "99 New Street"
	if !ctrl.SubmitEdit(ctx) {
		t.Fatalf("edit submit failed: %+v", ctrl.EditNotice)
	}
	for _, p := range ctrl.Patients() {
		if p.ID == created.ID && p.Address != "99 New Street" {
			t.Fatalf("refetched record = %+v", p)
		}
	}

	ctrl.BeginDelete(created.ID, created.FullName())
	if !ctrl.ConfirmDelete(ctx) {
		t.Fatalf("delete failed: %+v", ctrl.DeleteNotice)
	}
	if len(ctrl.Patients()) != seeded {
		t.Fatalf("list has %d records after delete", len(ctrl.Patients()))
	}
}

// Doctor notes cycle against the live stub, including a failed update for a
// missing record surfacing the backend message inside the modal scope.
func TestDoctorFlowAgainstBackend(t *testing.T) {
	client := startBackend(t)
	sessions := session.NewManager(session.NewMemStore(), client)
	sessions.Initialize()
	if msg, ok := sessions.Login(context.Background(), "doctor1", "password123"); !ok {
		t.Fatalf("login failed: %s", msg)
	}

	ctx := context.Background()
	ctrl := NewDoctor(client, sessions)
	ctrl.LoadList(ctx)

	target := ctrl.Patients()[0]
	ctrl.BeginNotes(target.ID, target.FullName(), target.DoctorNotes, target.Status)
	draft := ctrl.EditingNotes()
	draft.DoctorNotes = "stable"
	draft.Status = models.StatusActive
	if !ctrl.SubmitNotes(ctx) {
		t.Fatalf("notes submit failed: %+v", ctrl.NotesNotice)
	}
	if got := ctrl.Patients()[0].DoctorNotes; got != "stable" {
		t.Fatalf("refetched notes = %q", got)
	}

	ctrl.BeginNotes(9999, "Ghost", "", "")
	ctrl.EditingNotes().DoctorNotes = "x"
	if ctrl.SubmitNotes(ctx) {
		t.Fatal("notes update for a missing patient succeeded")
	}
	if !ctrl.NotesOpen() {
		t.Fatal("modal closed on failure")
	}
	if ctrl.NotesNotice.Message != "Patient not found" {
		t.Fatalf("notes notice = %+v", ctrl.NotesNotice)
	}
}

// Logging out mid-session clears both stores and the navigator falls back
// to the login view on every path.
func TestLogoutReturnsToLogin(t *testing.T) {
	client := startBackend(t)
	store := session.NewMemStore()
	sessions := session.NewManager(store, client)
	sessions.Initialize()
	if msg, ok := sessions.Login(context.Background(), "receptionist1", "password123"); !ok {
		t.Fatalf("login failed: %s", msg)
	}

	sessions.Logout()
	if _, ok := store.Load(); ok {
		t.Fatal("store still holds credentials")
	}
	for _, path := range []string{"/", "/receptionist", "/doctor"} {
		if dec := navigate.Decide(path, sessions.Current()); dec.Kind != navigate.KindShowLogin {
			t.Fatalf("path %q: decision = %+v", path, dec)
		}
	}
}
