package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mamisoa/clinic-portal/internal/models"
)

// Error is a failed API outcome. Transport errors never carry a server
// message; application failures carry whatever the backend put in its "error"
// field, which may be empty.
type Error struct {
	Message   string
	Transport bool
}

func (e *Error) Error() string {
	if e.Transport {
		return "request failed"
	}
	if e.Message == "" {
		return "server reported failure"
	}
	return e.Message
}

// AsError extracts an *Error from err, or wraps unknown errors as transport
// failures so callers always have something inspectable.
func AsError(err error) *Error {
	if apiErr, ok := err.(*Error); ok {
		return apiErr
	}
	return &Error{Transport: true}
}

// Client talks to the clinic backend. Success is detected by body shape
// (presence of a token/patients/patient/message field), not by HTTP status:
// that is the backend's convention and this client preserves it. No retries,
// no status interpretation.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the backend at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// envelope covers every response body shape the backend produces.
type envelope struct {
	Token    string           `json:"token"`
	User     *models.User     `json:"user"`
	Message  string           `json:"message"`
	Error    string           `json:"error"`
	Patient  *models.Patient  `json:"patient"`
	Patients []models.Patient `json:"patients"`
}

// do performs one request and decodes the body. A non-nil error here is
// always a transport failure (request never completed or body unparsable);
// application-level failures are left to the per-endpoint marker checks.
func (c *Client) do(ctx context.Context, method, path, token string, payload any) (*envelope, error) {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, &Error{Transport: true}
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, &Error{Transport: true}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Transport: true}
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &Error{Transport: true}
	}
	return &env, nil
}

// Login authenticates and returns the token plus the user object.
func (c *Client) Login(ctx context.Context, username, password string) (string, models.User, error) {
	payload := map[string]string{"username": username, "password": password}
	env, err := c.do(ctx, http.MethodPost, "/api/login", "", payload)
	if err != nil {
		return "", models.User{}, err
	}
	if env.Token == "" || env.User == nil {
		return "", models.User{}, &Error{Message: env.Error}
	}
	return env.Token, *env.User, nil
}

// ListPatients fetches the full patient list.
func (c *Client) ListPatients(ctx context.Context, token string) ([]models.Patient, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/patients", token, nil)
	if err != nil {
		return nil, err
	}
	if env.Patients == nil {
		return nil, &Error{Message: env.Error}
	}
	return env.Patients, nil
}

// GetPatient fetches a single patient by id.
func (c *Client) GetPatient(ctx context.Context, token string, id uint) (models.Patient, error) {
	env, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/patients/%d", id), token, nil)
	if err != nil {
		return models.Patient{}, err
	}
	if env.Patient == nil {
		return models.Patient{}, &Error{Message: env.Error}
	}
	return *env.Patient, nil
}

// CreatePatient registers a new patient (receptionist only).
func (c *Client) CreatePatient(ctx context.Context, token string, input models.PatientInput) error {
	env, err := c.do(ctx, http.MethodPost, "/api/receptionist/patients", token, input)
	if err != nil {
		return err
	}
	if env.Message == "" {
		return &Error{Message: env.Error}
	}
	return nil
}

// UpdatePatient updates a patient record (receptionist only).
func (c *Client) UpdatePatient(ctx context.Context, token string, id uint, input models.PatientInput) error {
	env, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/receptionist/patients/%d", id), token, input)
	if err != nil {
		return err
	}
	if env.Message == "" {
		return &Error{Message: env.Error}
	}
	return nil
}

// DeletePatient removes a patient record (receptionist only).
func (c *Client) DeletePatient(ctx context.Context, token string, id uint) error {
	env, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/receptionist/patients/%d", id), token, nil)
	if err != nil {
		return err
	}
	if env.Message == "" {
		return &Error{Message: env.Error}
	}
	return nil
}

// UpdateDoctorNotes updates doctor notes and status (doctor only).
func (c *Client) UpdateDoctorNotes(ctx context.Context, token string, id uint, input models.NotesInput) error {
	env, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/doctor/patients/%d/notes", id), token, input)
	if err != nil {
		return err
	}
	if env.Message == "" {
		return &Error{Message: env.Error}
	}
	return nil
}
