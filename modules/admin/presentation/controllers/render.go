package controllers

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/jobsboard/web/pkg/composables"
	"github.com/jobsboard/web/pkg/htmx"
)

// renderForm re-renders a rejected form. HTMX swaps the fragment in place;
// a plain post gets the whole page with 422.
func renderForm(w http.ResponseWriter, r *http.Request, page, fragment templ.Component) {
	var err error
	if htmx.IsHxRequest(r) {
		err = fragment.Render(r.Context(), w)
	} else {
		w.WriteHeader(http.StatusUnprocessableEntity)
		err = page.Render(r.Context(), w)
	}
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to render form")
	}
}

func render(w http.ResponseWriter, r *http.Request, page templ.Component) {
	if err := page.Render(r.Context(), w); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to render page")
	}
}
