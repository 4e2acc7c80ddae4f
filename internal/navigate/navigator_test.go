package navigate

import (
	"testing"

	"github.com/mamisoa/clinic-portal/internal/session"
)

func TestDecideLoading(t *testing.T) {
	dec := Decide("/receptionist", session.Session{Loading: true})
	if dec.Kind != KindLoading {
		t.Fatalf("expected loading decision, got %v", dec.Kind)
	}
}

func TestDecideUnauthenticatedAlwaysLogin(t *testing.T) {
	for _, path := range []string{"/", "/receptionist", "/doctor", "/nonsense"} {
		dec := Decide(path, session.Session{})
		if dec.Kind != KindShowLogin {
			t.Errorf("path %q: expected login view, got %v", path, dec.Kind)
		}
	}
}

func TestDecideAuthenticated(t *testing.T) {
	receptionist := session.Session{Token: "t", Username: "r1", Role: "receptionist"}
	doctor := session.Session{Token: "t", Username: "d1", Role: "doctor"}

	tests := []struct {
		name     string
		path     string
		sess     session.Session
		wantKind Kind
		wantRole string
		wantPath string
	}{
		{"receptionist on own path", "/receptionist", receptionist, KindShowPortal, "receptionist", ""},
		{"doctor on own path", "/doctor", doctor, KindShowPortal, "doctor", ""},
		{"receptionist on entry path", "/", receptionist, KindRedirect, "", "/receptionist"},
		{"doctor on entry path", "/", doctor, KindRedirect, "", "/doctor"},
		{"receptionist on doctor path", "/doctor", receptionist, KindRedirect, "", "/receptionist"},
		{"doctor on receptionist path", "/receptionist", doctor, KindRedirect, "", "/doctor"},
		{"unknown path", "/settings", doctor, KindRedirect, "", "/doctor"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := Decide(tt.path, tt.sess)
			if dec.Kind != tt.wantKind {
				t.Fatalf("kind = %v, want %v", dec.Kind, tt.wantKind)
			}
			if dec.Role != tt.wantRole {
				t.Errorf("role = %q, want %q", dec.Role, tt.wantRole)
			}
			if dec.Path != tt.wantPath {
				t.Errorf("path = %q, want %q", dec.Path, tt.wantPath)
			}
		})
	}
}

// A portal must never be rendered for a role that does not match the session.
func TestDecideNeverRendersMismatchedPortal(t *testing.T) {
	doctor := session.Session{Token: "t", Username: "d1", Role: "doctor"}
	dec := Decide("/receptionist", doctor)
	if dec.Kind == KindShowPortal {
		t.Fatal("doctor session rendered the receptionist portal")
	}
}

func TestDecideUnknownRoleResetsSession(t *testing.T) {
	s := session.Session{Token: "t", Username: "x", Role: "janitor"}
	dec := Decide("/", s)
	if dec.Kind != KindResetSession {
		t.Fatalf("expected session reset, got %v", dec.Kind)
	}
	if dec.Path != "/" {
		t.Errorf("reset path = %q, want %q", dec.Path, "/")
	}
}
