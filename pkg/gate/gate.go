// Package gate decides whether a view may render for a session.
package gate

import (
	"github.com/jobsboard/web/pkg/jobs"
	"github.com/jobsboard/web/pkg/session"
)

const SignInPath = "/auth/sign-in"

// Requirement is either a single role or any authenticated identity.
type Requirement struct {
	role jobs.Role
}

// Authenticated admits every resolved identity.
var Authenticated = Requirement{}

func Role(role jobs.Role) Requirement {
	return Requirement{role: role}
}

func (r Requirement) String() string {
	if r.role == "" {
		return "authenticated"
	}
	return string(r.role)
}

func (r Requirement) admits(identity *jobs.Identity) bool {
	if identity == nil {
		return false
	}
	return r.role == "" || identity.Role == r.role
}

type Outcome int

const (
	Render Outcome = iota
	Redirect
	Loading
	Deny
)

func (o Outcome) String() string {
	switch o {
	case Render:
		return "render"
	case Redirect:
		return "redirect"
	case Loading:
		return "loading"
	case Deny:
		return "deny"
	default:
		return "unknown"
	}
}

type Decision struct {
	Outcome Outcome
	// Location is set for Redirect.
	Location string
}

// Guard is pure. The credential check comes first so an anonymous visitor is
// redirected without resolving anything.
func Guard(req Requirement, st session.State) Decision {
	if !st.HasCredential() {
		return Decision{Outcome: Redirect, Location: SignInPath}
	}
	switch st.Status {
	case session.StatusResolved:
		if req.admits(st.Identity) {
			return Decision{Outcome: Render}
		}
		return Decision{Outcome: Deny}
	case session.StatusDenied:
		return Decision{Outcome: Deny}
	default:
		return Decision{Outcome: Loading}
	}
}
