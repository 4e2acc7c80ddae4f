package portal

import (
	"strings"

	"github.com/mamisoa/clinic-portal/internal/models"
)

// Matches reports whether the patient matches the search term: a
// case-insensitive substring test over first name, last name, contact, date
// of birth, gender, status and doctor notes. An empty term matches everyone.
func Matches(p models.Patient, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, field := range []string{
		p.FirstName,
		p.LastName,
		p.Contact,
		p.DOB,
		p.Gender,
		p.Status,
		p.DoctorNotes,
	} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// Filter applies Matches over a snapshot. It never mutates the input and
// never triggers a refetch; it only narrows what is displayed.
func Filter(patients []models.Patient, term string) []models.Patient {
	if term == "" {
		return patients
	}
	out := make([]models.Patient, 0, len(patients))
	for _, p := range patients {
		if Matches(p, term) {
			out = append(out, p)
		}
	}
	return out
}
