package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jobsboard/web/pkg/composables"
	"github.com/jobsboard/web/pkg/configuration"
	"github.com/jobsboard/web/pkg/constants"
	"github.com/jobsboard/web/pkg/types"
)

// Provide puts a fixed value on every request context.
func Provide(k constants.ContextKey, v any) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), k, v)))
		})
	}
}

func RequestParams() mux.MiddlewareFunc {
	conf := configuration.Use()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			params := &composables.Params{
				IP:        getRealIP(r, conf),
				UserAgent: r.UserAgent(),
				Request:   r,
				Writer:    w,
			}
			next.ServeHTTP(w, r.WithContext(composables.WithParams(r.Context(), params)))
		})
	}
}

type NavProvider interface {
	NavItems() []types.NavigationItem
}

// NavItems stores the navigation items visible to the session of the request.
// Must run after WithSession.
func NavItems(app NavProvider) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			st := composables.UseSession(r.Context())
			identity := st.Identity
			if !st.Authenticated() {
				identity = nil
			}
			items := app.NavItems()
			visible := make([]types.NavigationItem, 0, len(items))
			for _, item := range items {
				if item.Visible(identity) {
					visible = append(visible, item)
				}
			}
			ctx := context.WithValue(r.Context(), constants.NavItemsKey, visible)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
