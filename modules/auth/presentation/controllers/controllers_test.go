package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobsboard/web/modules/auth"
	"github.com/jobsboard/web/modules/core"
	"github.com/jobsboard/web/pkg/htmx"
	"github.com/jobsboard/web/pkg/itf"
	"github.com/jobsboard/web/pkg/jobs"
)

func newSuite(t *testing.T) *itf.Suite {
	t.Helper()
	return itf.NewSuite(t, core.NewModule(), auth.NewModule())
}

func TestSignIn_Page(t *testing.T) {
	s := newSuite(t)

	s.GET("/auth/sign-in").Do().
		Status(http.StatusOK).
		Contains(`name="email"`, `name="password"`, s.API.URL+"/auth/google")
}

func TestSignIn_SignedInUserIsSentHome(t *testing.T) {
	s := newSuite(t)

	s.AsUser(jobs.Identity{ID: "u1", Role: jobs.RoleSeeker}).GET("/auth/sign-in").Do().
		Status(http.StatusSeeOther).
		RedirectsTo("/")
}

func TestSignIn_StoresCredential(t *testing.T) {
	s := newSuite(t)
	s.API.JSON(http.MethodPost, "/auth/sign-in", http.StatusOK, map[string]string{"token": "jwt-1"})

	resp := s.POST("/auth/sign-in").
		Form(url.Values{"email": {" ada@example.com "}, "password": {"secret1"}}).
		Do().
		Status(http.StatusSeeOther).
		RedirectsTo("/")

	cookie, ok := resp.Cookie("token")
	require.True(t, ok)
	assert.Equal(t, "jwt-1", cookie.Value)
	assert.True(t, cookie.HttpOnly)

	toast, ok := resp.Toast()
	require.True(t, ok)
	assert.Equal(t, htmx.ToastSuccess, toast.Variant)
	assert.Equal(t, "Signed in successfully", toast.Message)

	var sent map[string]string
	require.NoError(t, json.Unmarshal(s.API.LastBody(http.MethodPost, "/auth/sign-in"), &sent))
	assert.Equal(t, map[string]string{"email": "ada@example.com", "password": "secret1"}, sent)
}

func TestSignIn_HTMXUsesHxRedirect(t *testing.T) {
	s := newSuite(t)
	s.API.JSON(http.MethodPost, "/auth/sign-in", http.StatusOK, map[string]string{"token": "jwt-1"})

	resp := s.POST("/auth/sign-in").HTMX().
		Form(url.Values{"email": {"ada@example.com"}, "password": {"secret1"}}).
		Do().
		Status(http.StatusOK)
	assert.Equal(t, "/", resp.Header().Get("Hx-Redirect"))
}

func TestSignIn_ValidationNeverCallsAPI(t *testing.T) {
	s := newSuite(t)
	s.API.JSON(http.MethodPost, "/auth/sign-in", http.StatusOK, map[string]string{"token": "jwt-1"})

	s.POST("/auth/sign-in").
		Form(url.Values{"email": {"not-an-email"}, "password": {"123"}}).
		Do().
		Status(http.StatusUnprocessableEntity).
		Contains(`value="not-an-email"`, `aria-invalid="true"`)

	s.POST("/auth/sign-in").HTMX().
		Form(url.Values{"email": {""}, "password": {""}}).
		Do().
		Status(http.StatusOK).
		Contains(`id="sign-in"`).
		NotContains("<html")

	assert.Zero(t, s.API.Calls(http.MethodPost, "/auth/sign-in"))
}

func TestSignIn_APIRejection(t *testing.T) {
	s := newSuite(t)
	s.API.Fail(http.MethodPost, "/auth/sign-in", http.StatusUnauthorized, "Wrong email or password")

	resp := s.POST("/auth/sign-in").HTMX().
		Form(url.Values{"email": {"ada@example.com"}, "password": {"secret1"}}).
		Do().
		Status(http.StatusOK).
		Contains("Wrong email or password")

	toast, ok := resp.Toast()
	require.True(t, ok)
	assert.Equal(t, htmx.ToastError, toast.Variant)
	assert.Equal(t, "Wrong email or password", toast.Message)
	_, hasCookie := resp.Cookie("token")
	assert.False(t, hasCookie)
}

func TestSignIn_APIRejectionWithoutMessage(t *testing.T) {
	s := newSuite(t)
	s.API.JSON(http.MethodPost, "/auth/sign-in", http.StatusInternalServerError, map[string]any{})

	resp := s.POST("/auth/sign-in").HTMX().
		Form(url.Values{"email": {"ada@example.com"}, "password": {"secret1"}}).
		Do()
	toast, ok := resp.Toast()
	require.True(t, ok)
	assert.Equal(t, "Invalid credentials", toast.Message)
}

func TestLogout_ClearsCredential(t *testing.T) {
	s := newSuite(t)

	resp := s.AsUser(jobs.Identity{ID: "u1", Role: jobs.RoleSeeker}).POST("/auth/logout").Do().
		Status(http.StatusSeeOther).
		RedirectsTo("/")
	cookie, ok := resp.Cookie("token")
	require.True(t, ok)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestSignUp_Choose(t *testing.T) {
	s := newSuite(t)

	s.GET("/auth/sign-up").Do().
		Status(http.StatusOK).
		Contains(`href="/auth/sign-up/user"`, `href="/auth/sign-up/company"`)
}

func TestSignUp_Seeker(t *testing.T) {
	s := newSuite(t)
	s.API.JSON(http.MethodPost, "/auth/sign-up/user", http.StatusCreated, map[string]any{"_id": "u9"})

	resp := s.POST("/auth/sign-up/user").
		Form(url.Values{"fullName": {"Ada Seeker"}, "email": {"ada@example.com"}, "password": {"secret1"}}).
		Do().
		Status(http.StatusSeeOther).
		RedirectsTo("/auth/sign-in")
	toast, ok := resp.Toast()
	require.True(t, ok)
	assert.Equal(t, "Account created. You can sign in now.", toast.Message)
	_, hasCookie := resp.Cookie("token")
	assert.False(t, hasCookie)
}

func TestSignUp_SeekerPasswordBounds(t *testing.T) {
	s := newSuite(t)

	s.POST("/auth/sign-up/user").HTMX().
		Form(url.Values{"fullName": {"Ada"}, "email": {"ada@example.com"}, "password": {"123456789012345678901"}}).
		Do().
		Status(http.StatusOK).
		Contains(`aria-invalid="true"`)
	assert.Zero(t, s.API.Calls(http.MethodPost, "/auth/sign-up/user"))
}

func TestSignUp_CompanyOmitsBlankWebsite(t *testing.T) {
	s := newSuite(t)
	s.API.JSON(http.MethodPost, "/auth/sign-up/company", http.StatusCreated, map[string]any{})

	resp := s.POST("/auth/sign-up/company").
		Form(url.Values{
			"companyName": {"Acme"},
			"email":       {"contact@acme.com"},
			"fullName":    {"Jo Owner"},
			"password":    {"secret1"},
			"website":     {"  "},
		}).
		Do().
		Status(http.StatusSeeOther).
		RedirectsTo("/auth/sign-in")
	toast, ok := resp.Toast()
	require.True(t, ok)
	assert.Equal(t, "Company registered. Awaiting admin approval.", toast.Message)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(s.API.LastBody(http.MethodPost, "/auth/sign-up/company"), &sent))
	assert.NotContains(t, sent, "website")
	assert.Equal(t, "Acme", sent["companyName"])
}

func TestSignUp_CompanyAPIError(t *testing.T) {
	s := newSuite(t)
	s.API.Fail(http.MethodPost, "/auth/sign-up/company", http.StatusConflict, "Email already in use")

	s.POST("/auth/sign-up/company").
		Form(url.Values{
			"companyName": {"Acme"},
			"email":       {"contact@acme.com"},
			"fullName":    {"Jo Owner"},
			"password":    {"secret1"},
		}).
		Do().
		Status(http.StatusUnprocessableEntity).
		Contains("Email already in use", `value="Acme"`)
}
