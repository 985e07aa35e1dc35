package middleware

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/jobsboard/web/pkg/composables"
	"github.com/jobsboard/web/pkg/gate"
	"github.com/jobsboard/web/pkg/htmx"
	"github.com/jobsboard/web/pkg/session"
)

// SessionSource reads the credential of a request and resolves it.
type SessionSource interface {
	Read(r *http.Request) string
	Resolve(ctx context.Context, credential string) session.State
}

// WithSession resolves the identity behind the credential cookie on every
// request. Nothing is cached between requests.
func WithSession(src SessionSource) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			st := src.Resolve(r.Context(), src.Read(r))
			if st.Status == session.StatusDenied {
				composables.UseLogger(r.Context()).Debug("session credential rejected by api")
			}
			next.ServeHTTP(w, r.WithContext(session.WithState(r.Context(), st)))
		})
	}
}

// RequireRole gates every route below it. A request without a credential is
// redirected to sign-in before anything is resolved; a pending session is
// resolved once; a mismatching or unresolvable identity gets the denied page.
func RequireRole(req gate.Requirement, src SessionSource, denied templ.Component) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			st, ok := session.FromContext(r.Context())
			if !ok {
				st = session.Initial(src.Read(r))
			}

			decision := gate.Guard(req, st)
			if decision.Outcome == gate.Loading {
				st = src.Resolve(r.Context(), st.Credential)
				decision = gate.Guard(req, st)
			}

			logger := composables.UseLogger(r.Context()).WithFields(logrus.Fields{
				"requirement": req.String(),
				"decision":    decision.Outcome.String(),
			})

			switch decision.Outcome {
			case gate.Render:
				next.ServeHTTP(w, r.WithContext(session.WithState(r.Context(), st)))
			case gate.Redirect:
				logger.Debug("gate redirect")
				if htmx.IsHxRequest(r) {
					htmx.Redirect(w, decision.Location)
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				http.Redirect(w, r, decision.Location, http.StatusFound)
			default:
				logger.Info("gate denied")
				if htmx.IsHxRequest(r) {
					htmx.ShowToast(w, htmx.ToastError, "Access denied")
					htmx.Reswap(w, "none")
				}
				w.WriteHeader(http.StatusForbidden)
				if err := denied.Render(r.Context(), w); err != nil {
					logger.WithError(err).Error("failed to render access denied page")
				}
			}
		})
	}
}
