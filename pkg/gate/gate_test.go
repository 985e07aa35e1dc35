package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jobsboard/web/pkg/jobs"
	"github.com/jobsboard/web/pkg/session"
)

func resolved(role jobs.Role) session.State {
	return session.State{
		Credential: "tok",
		Identity:   &jobs.Identity{ID: "u1", Role: role},
		Status:     session.StatusResolved,
	}
}

func TestGuard(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		req  Requirement
		st   session.State
		want Outcome
	}{
		{"absent credential redirects", Role(jobs.RoleAdmin), session.Initial(""), Redirect},
		{"absent wins over stale identity", Role(jobs.RoleAdmin), session.State{Identity: &jobs.Identity{Role: jobs.RoleAdmin}, Status: session.StatusResolved}, Redirect},
		{"pending is loading", Role(jobs.RoleAdmin), session.Initial("tok"), Loading},
		{"denied resolution denies", Role(jobs.RoleAdmin), session.State{Credential: "tok", Status: session.StatusDenied}, Deny},
		{"role mismatch denies", Role(jobs.RoleAdmin), resolved(jobs.RoleSeeker), Deny},
		{"role match renders", Role(jobs.RoleCompany), resolved(jobs.RoleCompany), Render},
		{"authenticated admits any role", Authenticated, resolved(jobs.RoleSeeker), Render},
		{"authenticated still denies failed resolution", Authenticated, session.State{Credential: "tok", Status: session.StatusDenied}, Deny},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Guard(tc.req, tc.st)
			assert.Equal(t, tc.want, got.Outcome)
			if tc.want == Redirect {
				assert.Equal(t, SignInPath, got.Location)
			} else {
				assert.Empty(t, got.Location)
			}
		})
	}
}
