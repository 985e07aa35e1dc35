package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobsboard/web/pkg/gate"
	"github.com/jobsboard/web/pkg/jobs"
	"github.com/jobsboard/web/pkg/session"
)

type fakeSource struct {
	credential string
	identity   *jobs.Identity
	calls      int
}

func (f *fakeSource) Read(*http.Request) string { return f.credential }

func (f *fakeSource) Resolve(_ context.Context, credential string) session.State {
	if credential == "" {
		return session.State{Status: session.StatusAbsent}
	}
	f.calls++
	if f.identity == nil {
		return session.State{Credential: credential, Status: session.StatusDenied}
	}
	return session.State{Credential: credential, Identity: f.identity, Status: session.StatusResolved}
}

var deniedPage = templ.Raw("<p>denied</p>")

func okHandler(seen *session.State) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if st, ok := session.FromContext(r.Context()); ok && seen != nil {
			*seen = st
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireRole_RedirectsWithoutResolving(t *testing.T) {
	t.Parallel()
	src := &fakeSource{}
	h := RequireRole(gate.Role(jobs.RoleAdmin), src, deniedPage)(okHandler(nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, gate.SignInPath, rec.Header().Get("Location"))
	assert.Zero(t, src.calls)
}

func TestRequireRole_HTMXRedirect(t *testing.T) {
	t.Parallel()
	h := RequireRole(gate.Authenticated, &fakeSource{}, deniedPage)(okHandler(nil))

	req := httptest.NewRequest(http.MethodGet, "/user/applications", nil)
	req.Header.Set("Hx-Request", "true")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, gate.SignInPath, rec.Header().Get("Hx-Redirect"))
}

func TestRequireRole_ResolvesPendingOnce(t *testing.T) {
	t.Parallel()
	src := &fakeSource{credential: "tok", identity: &jobs.Identity{ID: "u1", Role: jobs.RoleCompany}}
	var seen session.State
	h := RequireRole(gate.Role(jobs.RoleCompany), src, deniedPage)(okHandler(&seen))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/company", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, src.calls)
	assert.True(t, seen.Is(jobs.RoleCompany))
}

func TestRequireRole_DeniesMismatchingRole(t *testing.T) {
	t.Parallel()
	src := &fakeSource{credential: "tok", identity: &jobs.Identity{ID: "u1", Role: jobs.RoleSeeker}}
	h := RequireRole(gate.Role(jobs.RoleAdmin), src, deniedPage)(okHandler(nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "denied")
}

func TestRequireRole_DeniedIdentityNeverRedirects(t *testing.T) {
	t.Parallel()
	src := &fakeSource{credential: "expired"}
	h := RequireRole(gate.Authenticated, src, deniedPage)(okHandler(nil))

	req := httptest.NewRequest(http.MethodGet, "/company", nil)
	req.Header.Set("Hx-Request", "true")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, rec.Header().Get("Location"))
	assert.Empty(t, rec.Header().Get("Hx-Redirect"))
	assert.Contains(t, rec.Header().Get("Hx-Trigger"), "toast")
}

func TestRequireRole_UsesStateFromWithSession(t *testing.T) {
	t.Parallel()
	src := &fakeSource{credential: "tok", identity: &jobs.Identity{ID: "a1", Role: jobs.RoleAdmin}}
	h := WithSession(src)(RequireRole(gate.Role(jobs.RoleAdmin), src, deniedPage)(okHandler(nil)))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, src.calls)
}

func TestWithSession_AnonymousMakesNoCall(t *testing.T) {
	t.Parallel()
	src := &fakeSource{}
	var seen session.State
	WithSession(src)(okHandler(&seen)).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Zero(t, src.calls)
	assert.Equal(t, session.StatusAbsent, seen.Status)
}
