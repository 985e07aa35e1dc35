package controllers

import (
	"net/http"
	"strings"

	"github.com/jobsboard/web/components/base"
	"github.com/jobsboard/web/pkg/application"
	"github.com/jobsboard/web/pkg/httpapi"
	"github.com/jobsboard/web/pkg/middleware"
	"github.com/jobsboard/web/pkg/routing"
)

func handler404(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	if err := base.NotFound().Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

type ErrorHandlersOptions struct {
	Entrypoint    string
	AllowlistPath string
}

func classifier(opts []ErrorHandlersOptions) *routing.Classifier {
	var resolvedOpts ErrorHandlersOptions
	if len(opts) > 0 {
		resolvedOpts = opts[0]
	}
	rules, err := routing.LoadAllowlist(resolvedOpts.AllowlistPath, resolvedOpts.Entrypoint)
	if err != nil {
		rules = nil
	}
	return routing.NewClassifier(rules)
}

// NotFound answers ops paths with the JSON envelope and everything else with
// the not found page.
func NotFound(app application.Application, opts ...ErrorHandlersOptions) http.HandlerFunc {
	c := classifier(opts)

	var page http.Handler = http.HandlerFunc(handler404)
	stack := middleware.PageStack(app)
	for i := len(stack) - 1; i >= 0; i-- {
		page = stack[i](page)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if c.ClassifyPath(r.URL.Path).WantsJSON() {
			meta := map[string]string{
				"path": r.URL.Path,
			}
			if requestID := requestIDFromResponse(w, r); requestID != "" {
				meta["request_id"] = requestID
			}
			_ = httpapi.WriteError(w, http.StatusNotFound, "NOT_FOUND", "not found", meta)
			return
		}
		page.ServeHTTP(w, r)
	}
}

func MethodNotAllowed(opts ...ErrorHandlersOptions) http.HandlerFunc {
	c := classifier(opts)

	return func(w http.ResponseWriter, r *http.Request) {
		if c.ClassifyPath(r.URL.Path).WantsJSON() {
			meta := map[string]string{
				"method": r.Method,
				"path":   r.URL.Path,
			}
			if requestID := requestIDFromResponse(w, r); requestID != "" {
				meta["request_id"] = requestID
			}
			_ = httpapi.WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", meta)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func requestIDFromResponse(w http.ResponseWriter, r *http.Request) string {
	if w != nil {
		if requestID := strings.TrimSpace(w.Header().Get("X-Request-Id")); requestID != "" {
			return requestID
		}
	}
	if r != nil {
		return strings.TrimSpace(r.Header.Get("X-Request-Id"))
	}
	return ""
}
