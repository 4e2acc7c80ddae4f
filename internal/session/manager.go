package session

import (
	"context"
	"log"
	"sync"

	"github.com/mamisoa/clinic-portal/internal/api"
	"github.com/mamisoa/clinic-portal/internal/models"
)

// Session is the in-memory authentication state. Token, Username and Role are
// set and cleared together; Loading is true only until the single startup
// read from the persisted store has happened.
type Session struct {
	Token    string
	Username string
	Role     string
	Loading  bool
}

// Authenticated reports whether a credential bundle is present.
func (s Session) Authenticated() bool { return s.Token != "" }

// Authenticator is the login half of the API client.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, models.User, error)
}

// Manager owns the session state. It is the only component that writes the
// session or the persisted store; everything else observes it through
// Subscribe and treats it as read-only.
type Manager struct {
	mu        sync.Mutex
	session   Session
	store     Store
	auth      Authenticator
	listeners []func(Session)
}

// NewManager builds a manager over the given store and authenticator. The
// session starts in the loading state until Initialize is called.
func NewManager(store Store, auth Authenticator) *Manager {
	return &Manager{
		store:   store,
		auth:    auth,
		session: Session{Loading: true},
	}
}

// Subscribe registers a listener invoked synchronously after every session
// change. The listener is called with a copy of the new state.
func (m *Manager) Subscribe(fn func(Session)) {
	m.mu.Lock()
	m.listeners = append(m.listeners, fn)
	m.mu.Unlock()
}

// Current returns a copy of the session state.
func (m *Manager) Current() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

func (m *Manager) set(s Session) {
	m.mu.Lock()
	m.session = s
	listeners := make([]func(Session), len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.Unlock()
	for _, fn := range listeners {
		fn(s)
	}
}

// Initialize performs the single startup read from the persisted store. It
// never validates the stored token against the network; a stale token is only
// discovered when a later API call fails. Loading is cleared unconditionally,
// even when nothing was stored.
func (m *Manager) Initialize() {
	next := Session{}
	if creds, ok := m.store.Load(); ok {
		next.Token = creds.Token
		next.Username = creds.Username
		next.Role = creds.Role
	}
	m.set(next)
}

// Login authenticates against the backend. On success the credential bundle
// is written to both the in-memory session and the persisted store and the
// returned message is "Login successful!". On any failure the existing
// session is left untouched and a human-readable message is returned; Login
// never panics and never partially applies.
func (m *Manager) Login(ctx context.Context, username, password string) (string, bool) {
	token, user, err := m.auth.Login(ctx, username, password)
	if err != nil {
		apiErr := api.AsError(err)
		if apiErr.Transport {
			return "An error occurred during login.", false
		}
		if apiErr.Message == "" {
			return "Login failed.", false
		}
		return apiErr.Message, false
	}

	creds := Credentials{Token: token, Username: user.Username, Role: user.Role}
	if err := m.store.Save(creds); err != nil {
		log.Printf("Failed to persist session: %v", err)
	}
	m.set(Session{Token: token, Username: user.Username, Role: user.Role})
	return "Login successful!", true
}

// Logout clears the in-memory session and the persisted store together. The
// synchronous notification brings the navigator back to the login view.
func (m *Manager) Logout() {
	if err := m.store.Clear(); err != nil {
		log.Printf("Failed to clear persisted session: %v", err)
	}
	m.set(Session{})
}
