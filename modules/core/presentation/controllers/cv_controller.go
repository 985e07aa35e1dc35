package controllers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/jobsboard/web/components/base"
	"github.com/jobsboard/web/pkg/apiclient"
	"github.com/jobsboard/web/pkg/application"
	"github.com/jobsboard/web/pkg/composables"
	"github.com/jobsboard/web/pkg/gate"
	"github.com/jobsboard/web/pkg/htmx"
	"github.com/jobsboard/web/pkg/intl"
	"github.com/jobsboard/web/pkg/middleware"
	"github.com/jobsboard/web/pkg/shared"
)

// CVController turns a stored CV key into the signed URL the API hands out
// and sends the browser there.
type CVController struct {
	app application.Application
	api *apiclient.Client
}

func NewCVController(app application.Application) application.Controller {
	return &CVController{app: app, api: app.API()}
}

func (c *CVController) Key() string {
	return "/applications/cv"
}

func (c *CVController) Register(r *mux.Router) {
	router := r.PathPrefix("/applications/cv").Subrouter()
	router.Use(middleware.PageStack(c.app)...)
	router.Use(middleware.RequireRole(gate.Authenticated, c.app.Sessions(), base.AccessDenied()))
	router.HandleFunc("/{key:.+}", c.Open).Methods(http.MethodGet)
}

func (c *CVController) Open(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimSpace(mux.Vars(r)["key"])
	signed, err := c.api.CVURL(r.Context(), key)
	if err != nil || signed == "" {
		composables.UseLogger(r.Context()).WithError(err).WithField("key", key).Warn("failed to sign cv url")
		back := r.Referer()
		if back == "" {
			back = "/"
		}
		shared.FlashToast(w, htmx.ToastError, apiclient.MessageOr(err, intl.MustT(r.Context(), "Errors.CVUnavailable")))
		http.Redirect(w, r, back, http.StatusFound)
		return
	}
	http.Redirect(w, r, signed, http.StatusFound)
}
