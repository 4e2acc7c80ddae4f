package models

// Role names recognized by the client. Any other value stored in a session is
// treated as a fatal session inconsistency.
const (
	RoleReceptionist = "receptionist"
	RoleDoctor       = "doctor"
)

// KnownRole reports whether role is one the client can route.
func KnownRole(role string) bool {
	return role == RoleReceptionist || role == RoleDoctor
}

// HomePath maps a role to its portal path. Empty for unknown roles.
func HomePath(role string) string {
	switch role {
	case RoleReceptionist:
		return "/receptionist"
	case RoleDoctor:
		return "/doctor"
	default:
		return ""
	}
}

// User is the user object returned by the login endpoint.
type User struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
