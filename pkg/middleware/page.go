package middleware

import (
	"github.com/gorilla/mux"

	"github.com/jobsboard/web/pkg/session"
)

// PageApp is what the page stack needs from the application.
type PageApp interface {
	Application
	NavProvider
	Sessions() *session.Manager
}

// PageStack is the middleware every HTML route runs: localizer, session,
// navigation and page context, in that order.
func PageStack(app PageApp) []mux.MiddlewareFunc {
	return []mux.MiddlewareFunc{
		ProvideLocalizer(app),
		WithSession(app.Sessions()),
		NavItems(app),
		WithPageContext(),
	}
}

