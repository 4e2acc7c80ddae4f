// Package stubserver is an in-memory double of the clinic REST backend. It
// implements the same endpoints, role rules and response bodies as the real
// service, and backs both the development server and the package tests that
// drive the client against a live HTTP boundary.
package stubserver

import (
	"sync"

	"github.com/mamisoa/clinic-portal/internal/models"
	"github.com/mamisoa/clinic-portal/internal/utils"
)

type user struct {
	Username     string
	PasswordHash string
	Role         string
}

// Server holds the in-memory state behind the stub routes.
type Server struct {
	secret []byte

	mu       sync.Mutex
	users    map[string]user
	patients map[uint]*models.Patient
	nextID   uint
}

// New builds an empty stub server signing tokens with secret.
func New(secret []byte) *Server {
	return &Server{
		secret:   secret,
		users:    make(map[string]user),
		patients: make(map[uint]*models.Patient),
		nextID:   1,
	}
}

// AddUser registers a user with a bcrypt-hashed password.
func (s *Server) AddUser(username, password, role string) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[username] = user{Username: username, PasswordHash: hash, Role: role}
	return nil
}

// AddPatient inserts a record directly, assigning the next id. Returns the
// stored copy.
func (s *Server) AddPatient(p models.Patient) models.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextID
	s.nextID++
	if p.Status == "" {
		p.Status = models.StatusActive
	}
	stored := p
	s.patients[p.ID] = &stored
	return stored
}

// SeedDefaults loads the development fixtures: one receptionist, one doctor
// and a couple of patients.
func (s *Server) SeedDefaults() error {
	if err := s.AddUser("receptionist1", "password123", models.RoleReceptionist); err != nil {
		return err
	}
	if err := s.AddUser("doctor1", "password123", models.RoleDoctor); err != nil {
		return err
	}
	s.AddPatient(models.Patient{
		FirstName: "Alice", LastName: "Ranaivo", DOB: "1988-04-02",
		Gender: "Female", Contact: "034 11 222 33", Address: "12 Rue des Lilas",
	})
	s.AddPatient(models.Patient{
		FirstName: "Ben", LastName: "Rakoto", DOB: "1975-11-19",
		Gender: "Male", Contact: "033 44 555 66", Address: "8 Avenue Centrale",
		DoctorNotes: "Follow-up in two weeks", Status: models.StatusOnLeave,
	})
	return nil
}

func (s *Server) contactTaken(contact string, exceptID uint) bool {
	for _, p := range s.patients {
		if p.Contact == contact && p.ID != exceptID {
			return true
		}
	}
	return false
}
