package itf

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobsboard/web/internal/assets"
	"github.com/jobsboard/web/internal/server"
	"github.com/jobsboard/web/pkg/apiclient"
	"github.com/jobsboard/web/pkg/application"
	"github.com/jobsboard/web/pkg/configuration"
	"github.com/jobsboard/web/pkg/htmx"
	"github.com/jobsboard/web/pkg/jobs"
	"github.com/jobsboard/web/pkg/session"
	"github.com/jobsboard/web/pkg/shared"
	"github.com/jobsboard/web/pkg/viewstate"
)

// Suite is the web frontend with the given modules, wired to a FakeAPI.
type Suite struct {
	tb         testing.TB
	API        *FakeAPI
	App        application.Application
	Handler    http.Handler
	ViewState  *viewstate.MemoryStore
	cookieName string
	credential string
}

func NewSuite(tb testing.TB, modules ...application.Module) *Suite {
	tb.Helper()
	conf := configuration.Use()
	api := NewFakeAPI(tb)

	client := apiclient.New(apiclient.Options{
		BaseURL:    api.URL,
		Timeout:    5 * time.Second,
		Credential: session.CredentialFrom,
		Logger:     conf.Logger(),
	})
	sessions := session.NewManager(
		session.NewResolver(client),
		session.CookieStore{Name: conf.Session.CookieKey, MaxAge: conf.Session.Duration},
	)
	store := viewstate.NewMemoryStore(time.Minute)
	app := application.New(&application.ApplicationOptions{
		API:       client,
		Sessions:  sessions,
		ViewState: store,
	})
	app.RegisterHashFsAssets(assets.HashFS)
	for _, m := range modules {
		require.NoError(tb, m.Register(app), m.Name())
	}

	srv, err := server.Default(&server.DefaultOptions{
		Logger:        conf.Logger(),
		Configuration: conf,
		Application:   app,
		Entrypoint:    "server",
		Gatherer:      prometheus.NewRegistry(),
	})
	require.NoError(tb, err)

	return &Suite{
		tb:         tb,
		API:        api,
		App:        app,
		Handler:    srv.Router(),
		ViewState:  store,
		cookieName: conf.Session.CookieKey,
	}
}

// AsUser signs the following requests in as identity.
func (s *Suite) AsUser(identity jobs.Identity) *Suite {
	token := "token-" + identity.ID
	s.API.AddUser(token, identity)
	s.credential = token
	return s
}

// WithCredential sends a credential the API may or may not know.
func (s *Suite) WithCredential(token string) *Suite {
	s.credential = token
	return s
}

func (s *Suite) Anonymous() *Suite {
	s.credential = ""
	return s
}

func (s *Suite) GET(path string) *Request {
	return s.request(http.MethodGet, path)
}

func (s *Suite) POST(path string) *Request {
	return s.request(http.MethodPost, path)
}

func (s *Suite) PATCH(path string) *Request {
	return s.request(http.MethodPatch, path)
}

func (s *Suite) request(method, path string) *Request {
	return &Request{suite: s, method: method, path: path, header: http.Header{}}
}

type file struct {
	field, name string
	content     []byte
}

type Request struct {
	suite  *Suite
	method string
	path   string
	header http.Header
	form   url.Values
	files  []file
}

func (r *Request) HTMX() *Request {
	r.header.Set("Hx-Request", "true")
	return r
}

func (r *Request) Header(key, value string) *Request {
	r.header.Set(key, value)
	return r
}

func (r *Request) Form(values url.Values) *Request {
	r.form = values
	return r
}

func (r *Request) File(field, name string, content []byte) *Request {
	r.files = append(r.files, file{field: field, name: name, content: content})
	return r
}

func (r *Request) Do() *Response {
	tb := r.suite.tb
	tb.Helper()

	var req *http.Request
	switch {
	case len(r.files) > 0:
		body := &bytes.Buffer{}
		mw := multipart.NewWriter(body)
		for k, vs := range r.form {
			for _, v := range vs {
				require.NoError(tb, mw.WriteField(k, v))
			}
		}
		for _, f := range r.files {
			part, err := mw.CreateFormFile(f.field, f.name)
			require.NoError(tb, err)
			_, err = part.Write(f.content)
			require.NoError(tb, err)
		}
		require.NoError(tb, mw.Close())
		req = httptest.NewRequest(r.method, r.path, body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
	case r.form != nil:
		req = httptest.NewRequest(r.method, r.path, strings.NewReader(r.form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	default:
		req = httptest.NewRequest(r.method, r.path, nil)
	}
	for k, vs := range r.header {
		req.Header[k] = vs
	}
	if r.suite.credential != "" {
		req.AddCookie(&http.Cookie{Name: r.suite.cookieName, Value: r.suite.credential})
	}

	rec := httptest.NewRecorder()
	r.suite.Handler.ServeHTTP(rec, req)
	return &Response{ResponseRecorder: rec, tb: tb}
}

type Response struct {
	*httptest.ResponseRecorder
	tb testing.TB
}

func (r *Response) Status(code int) *Response {
	r.tb.Helper()
	assert.Equal(r.tb, code, r.Code, r.Body.String())
	return r
}

func (r *Response) Contains(parts ...string) *Response {
	r.tb.Helper()
	body := r.Body.String()
	for _, p := range parts {
		assert.Contains(r.tb, body, p)
	}
	return r
}

func (r *Response) NotContains(parts ...string) *Response {
	r.tb.Helper()
	body := r.Body.String()
	for _, p := range parts {
		assert.NotContains(r.tb, body, p)
	}
	return r
}

// RedirectsTo checks a plain redirect or an Hx-Redirect.
func (r *Response) RedirectsTo(path string) *Response {
	r.tb.Helper()
	location := r.Header().Get("Location")
	if location == "" {
		location = r.Header().Get("Hx-Redirect")
	}
	assert.Equal(r.tb, path, location)
	return r
}

// Toast returns the toast of the response, from Hx-Trigger or the flash
// cookie, and false when there is none.
func (r *Response) Toast() (htmx.Toast, bool) {
	r.tb.Helper()
	if trigger := r.Header().Get("Hx-Trigger"); trigger != "" {
		var events map[string]htmx.Toast
		if err := json.Unmarshal([]byte(trigger), &events); err == nil {
			if t, ok := events["toast"]; ok {
				return t, true
			}
		}
	}
	for _, c := range r.Result().Cookies() {
		if c.Name != shared.ToastFlash || c.Value == "" {
			continue
		}
		decoded, err := decodeFlash(c.Value)
		require.NoError(r.tb, err)
		return htmx.Toast{Variant: htmx.ToastVariant(decoded["variant"]), Message: decoded["message"]}, true
	}
	return htmx.Toast{}, false
}

func (r *Response) Cookie(name string) (*http.Cookie, bool) {
	for _, c := range r.Result().Cookies() {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}
