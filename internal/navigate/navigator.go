// Package navigate decides what the client renders for a given URL path and
// session state. Decide is a pure function recomputed on every relevant state
// change; it holds no state of its own, which keeps routing testable without
// a browser location object.
package navigate

import (
	"github.com/mamisoa/clinic-portal/internal/models"
	"github.com/mamisoa/clinic-portal/internal/session"
)

// Kind enumerates the navigator outcomes.
type Kind int

const (
	// KindLoading renders only a loading indicator (startup read pending).
	KindLoading Kind = iota
	// KindShowLogin renders the login view, regardless of path.
	KindShowLogin
	// KindShowPortal renders the portal for Decision.Role.
	KindShowPortal
	// KindRedirect renders nothing; the caller must set the path to
	// Decision.Path and re-evaluate.
	KindRedirect
	// KindResetSession is a fatal session inconsistency: the caller must
	// clear the session and move to Decision.Path.
	KindResetSession
)

// Decision is the outcome of one evaluation.
type Decision struct {
	Kind Kind
	Role string // set for KindShowPortal
	Path string // set for KindRedirect and KindResetSession
}

// Decide maps (path, session) to a render decision.
//
// An authenticated user on the other role's path is silently redirected to
// their own portal rather than shown an error; an authenticated session with
// an unrecognized role is treated as corrupt and torn down.
func Decide(path string, s session.Session) Decision {
	if s.Loading {
		return Decision{Kind: KindLoading}
	}
	if !s.Authenticated() {
		return Decision{Kind: KindShowLogin}
	}
	if !models.KnownRole(s.Role) {
		return Decision{Kind: KindResetSession, Path: "/"}
	}
	home := models.HomePath(s.Role)
	if path == home {
		return Decision{Kind: KindShowPortal, Role: s.Role}
	}
	// Entry path, the other role's path, or anything unrecognized: correct
	// the location to this role's home.
	return Decision{Kind: KindRedirect, Path: home}
}
