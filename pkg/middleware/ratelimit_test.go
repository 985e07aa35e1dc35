package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimit_BlocksAfterLimit(t *testing.T) {
	t.Parallel()
	h := RateLimit(RateLimitConfig{
		RequestsPerPeriod: 2,
		Period:            time.Minute,
		Store:             NewMemoryStore(),
		KeyFunc:           func(*http.Request) string { return "10.0.0.1" },
		Methods:           []string{http.MethodPost},
	})(okHandler(nil))

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/sign-in", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/sign-in", nil)
	req.Header.Set("Hx-Request", "true")
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.Contains(t, rec.Header().Get("Hx-Trigger"), "toast")

	get := httptest.NewRecorder()
	h.ServeHTTP(get, httptest.NewRequest(http.MethodGet, "/auth/sign-in", nil))
	assert.Equal(t, http.StatusOK, get.Code)
}

func TestRateLimit_KeysAreIndependent(t *testing.T) {
	t.Parallel()
	h := RateLimit(RateLimitConfig{
		RequestsPerPeriod: 1,
		Store:             NewMemoryStore(),
		KeyFunc:           func(r *http.Request) string { return r.Header.Get("X-Client") },
	})(okHandler(nil))

	for _, client := range []string{"a", "b"} {
		req := httptest.NewRequest(http.MethodPost, "/auth/sign-up/user", nil)
		req.Header.Set("X-Client", client)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, client)
	}
}

func TestRateLimit_ZeroDisables(t *testing.T) {
	t.Parallel()
	h := RateLimit(RateLimitConfig{Store: NewMemoryStore(), KeyFunc: func(*http.Request) string { return "x" }})(okHandler(nil))
	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimit_MatchNarrowsScope(t *testing.T) {
	t.Parallel()
	h := RateLimit(RateLimitConfig{
		RequestsPerPeriod: 1,
		Store:             NewMemoryStore(),
		KeyFunc:           func(*http.Request) string { return "x" },
		Match:             func(r *http.Request) bool { return r.URL.Path == "/auth/sign-in" },
	})(okHandler(nil))

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/company/vacancies/new", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}
