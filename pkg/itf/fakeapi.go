// Package itf runs the whole web frontend against a fake jobs API in tests.
package itf

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"

	"github.com/jobsboard/web/pkg/jobs"
)

// FakeAPI is an in-process jobs API. Routes are registered per test with the
// gorilla/mux pattern syntax of the real API paths.
type FakeAPI struct {
	*httptest.Server
	Router *mux.Router

	mu     sync.Mutex
	users  map[string]jobs.Identity
	calls  map[string]int
	bodies map[string][]byte
	auth   map[string]string
}

func NewFakeAPI(tb testing.TB) *FakeAPI {
	tb.Helper()
	f := &FakeAPI{
		Router: mux.NewRouter(),
		users:  map[string]jobs.Identity{},
		calls:  map[string]int{},
		bodies: map[string][]byte{},
		auth:   map[string]string{},
	}
	f.Router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, http.StatusNotFound, map[string]any{"message": "Not Found", "statusCode": 404})
	})
	f.Handle(http.MethodGet, "/auth/current-user", f.currentUser)
	f.Server = httptest.NewServer(f.Router)
	tb.Cleanup(f.Close)
	return f
}

func routeKey(method, pattern string) string {
	return method + " " + pattern
}

// Handle registers h and records every call to it.
func (f *FakeAPI) Handle(method, pattern string, h http.HandlerFunc) {
	key := routeKey(method, pattern)
	f.Router.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.calls[key]++
		f.bodies[key] = body
		f.auth[key] = r.Header.Get("Authorization")
		f.mu.Unlock()
		r.Body = io.NopCloser(strings.NewReader(string(body)))
		h(w, r)
	}).Methods(method)
}

// JSON registers a route answering a fixed status and body.
func (f *FakeAPI) JSON(method, pattern string, status int, body any) {
	f.Handle(method, pattern, func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, status, body)
	})
}

// Fail registers a route answering the API error shape.
func (f *FakeAPI) Fail(method, pattern string, status int, message string) {
	f.JSON(method, pattern, status, map[string]any{"message": message, "statusCode": status})
}

func (f *FakeAPI) Calls(method, pattern string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[routeKey(method, pattern)]
}

// LastBody returns the body of the latest call to the route.
func (f *FakeAPI) LastBody(method, pattern string) []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bodies[routeKey(method, pattern)]
}

// LastAuthorization returns the Authorization header of the latest call.
func (f *FakeAPI) LastAuthorization(method, pattern string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.auth[routeKey(method, pattern)]
}

// AddUser makes token resolve to identity on /auth/current-user.
func (f *FakeAPI) AddUser(token string, identity jobs.Identity) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[token] = identity
}

func (f *FakeAPI) currentUser(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	f.mu.Lock()
	identity, ok := f.users[token]
	f.mu.Unlock()
	if !ok {
		WriteJSON(w, http.StatusUnauthorized, map[string]any{"message": "Unauthorized", "statusCode": 401})
		return
	}
	WriteJSON(w, http.StatusOK, User(identity))
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}
