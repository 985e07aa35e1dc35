package routinggates

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/jobsboard/web/modules"
	corecontrollers "github.com/jobsboard/web/modules/core/presentation/controllers"
	"github.com/jobsboard/web/pkg/htmx"
	"github.com/jobsboard/web/pkg/itf"
	"github.com/jobsboard/web/pkg/middleware"
)

func TestErrorContracts_OpsIsJSON_UIIsHTML(t *testing.T) {
	suite := itf.NewSuite(t, modules.BuiltInModules...)

	opts := corecontrollers.ErrorHandlersOptions{Entrypoint: "server"}
	notFound := corecontrollers.NotFound(suite.App, opts)
	methodNotAllowed := corecontrollers.MethodNotAllowed(opts)

	t.Run("404_ops_is_json", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "http://example.com/debug/prometheus/__nonexistent__", nil)
		req.Header.Set("X-Request-ID", "req-404-ops")
		notFound(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
		require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

		var payload apiError
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&payload))
		require.Equal(t, "NOT_FOUND", payload.Code)
		require.Equal(t, "not found", payload.Message)
		require.Equal(t, "/debug/prometheus/__nonexistent__", payload.Meta["path"])
		require.Equal(t, "req-404-ops", payload.Meta["request_id"])
	})

	t.Run("404_board_page_is_html", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "http://example.com/vacancies/missing/nowhere", nil)
		notFound(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
		require.NotEqual(t, "application/json", rr.Header().Get("Content-Type"))
	})

	t.Run("405_ops_is_json", func(t *testing.T) {
		r := mux.NewRouter()
		r.MethodNotAllowedHandler = methodNotAllowed
		r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}).Methods(http.MethodGet)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "http://example.com/health", nil)
		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
		require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

		var payload apiError
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&payload))
		require.Equal(t, "METHOD_NOT_ALLOWED", payload.Code)
		require.Equal(t, http.MethodPost, payload.Meta["method"])
		require.Equal(t, "/health", payload.Meta["path"])
	})

	t.Run("405_ui_is_plain_text", func(t *testing.T) {
		r := mux.NewRouter()
		r.MethodNotAllowedHandler = methodNotAllowed
		r.HandleFunc("/vacancies", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}).Methods(http.MethodGet)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "http://example.com/vacancies", nil)
		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
		require.NotEqual(t, "application/json", rr.Header().Get("Content-Type"))
	})
}

func TestErrorContracts_PanicRecovery(t *testing.T) {
	logger := logrus.New()
	opts := middleware.DefaultLoggerOptions()
	opts.Entrypoint = "server"

	h := middleware.WithLogger(logger, opts)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	t.Run("ops_is_json", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "http://example.com/health", nil)
		h.ServeHTTP(rr, req)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

		var payload apiError
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&payload))
		require.Equal(t, "INTERNAL_SERVER_ERROR", payload.Code)
		require.Equal(t, "internal server error", payload.Message)
		require.Equal(t, "/health", payload.Meta["path"])
		require.NotEmpty(t, payload.Meta["request_id"])
	})

	t.Run("htmx_gets_a_toast", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "http://example.com/admin/companies/c1/approve", nil)
		req.Header.Set("Hx-Request", "true")
		h.ServeHTTP(rr, req)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		require.Equal(t, "none", rr.Header().Get("Hx-Reswap"))
		require.Contains(t, rr.Header().Get("Hx-Trigger"), string(htmx.ToastError))
	})
}

type apiError struct {
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Meta    map[string]string `json:"meta"`
}
