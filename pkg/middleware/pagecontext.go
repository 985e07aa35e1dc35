package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jobsboard/web/pkg/composables"
	"github.com/jobsboard/web/pkg/intl"
	"github.com/jobsboard/web/pkg/types"
)

// WithPageContext must run after ProvideLocalizer and WithSession.
func WithPageContext() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				localizer, found := intl.UseLocalizer(r.Context())
				if !found {
					panic(intl.ErrNoLocalizer)
				}
				locale, ok := intl.UseLocale(r.Context())
				if !ok {
					panic("locale not found")
				}
				pageCtx := &types.PageContext{
					URL:       r.URL,
					Localizer: localizer,
					Locale:    locale,
					State:     composables.UseSession(r.Context()),
				}
				next.ServeHTTP(w, r.WithContext(composables.WithPageCtx(r.Context(), pageCtx)))
			},
		)
	}
}
