package models

// Patient status values accepted by the backend.
const (
	StatusActive     = "active"
	StatusDischarged = "discharged"
	StatusOnLeave    = "on_leave"
)

// Patient is a patient record as serialized by the backend. The client never
// owns these; the currently displayed list is a read-through cache that is
// replaced wholesale after every successful mutation.
type Patient struct {
	ID          uint   `json:"ID"`
	FirstName   string `json:"FirstName"`
	LastName    string `json:"LastName"`
	DOB         string `json:"DOB"` // "YYYY-MM-DD"
	Gender      string `json:"Gender"`
	Contact     string `json:"Contact"`
	Address     string `json:"Address"`
	DoctorNotes string `json:"DoctorNotes"`
	Status      string `json:"Status"`
}

// FullName joins first and last name for display and delete confirmations.
func (p Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// PatientInput is the snake_case request body for create/update calls.
type PatientInput struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DOB         string `json:"dob"`
	Gender      string `json:"gender"`
	Contact     string `json:"contact"`
	Address     string `json:"address"`
	DoctorNotes string `json:"doctor_notes,omitempty"`
	Status      string `json:"status,omitempty"`
}

// InputFromPatient builds the update request body from an edited record.
func InputFromPatient(p Patient) PatientInput {
	return PatientInput{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DOB:         p.DOB,
		Gender:      p.Gender,
		Contact:     p.Contact,
		Address:     p.Address,
		DoctorNotes: p.DoctorNotes,
		Status:      p.Status,
	}
}

// NotesInput is the body for the doctor notes/status endpoint.
type NotesInput struct {
	DoctorNotes string `json:"doctor_notes"`
	Status      string `json:"status"`
}
