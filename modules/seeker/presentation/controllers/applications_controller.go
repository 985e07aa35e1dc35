package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jobsboard/web/components/base"
	"github.com/jobsboard/web/modules/seeker/presentation/templates/pages/applications"
	"github.com/jobsboard/web/modules/vacancies/presentation/mappers"
	"github.com/jobsboard/web/pkg/apiclient"
	"github.com/jobsboard/web/pkg/application"
	"github.com/jobsboard/web/pkg/composables"
	"github.com/jobsboard/web/pkg/gate"
	"github.com/jobsboard/web/pkg/intl"
	"github.com/jobsboard/web/pkg/jobs"
	"github.com/jobsboard/web/pkg/middleware"
)

type ApplicationsController struct {
	app application.Application
	api *apiclient.Client
}

func NewApplicationsController(app application.Application) application.Controller {
	return &ApplicationsController{app: app, api: app.API()}
}

func (c *ApplicationsController) Key() string {
	return "/user/applications"
}

func (c *ApplicationsController) Register(r *mux.Router) {
	router := r.PathPrefix("/user/applications").Subrouter()
	router.Use(middleware.PageStack(c.app)...)
	router.Use(middleware.RequireRole(gate.Role(jobs.RoleSeeker), c.app.Sessions(), base.AccessDenied()))
	router.HandleFunc("", c.List).Methods(http.MethodGet)
}

// List shows the applications of the signed-in seeker. A failed load reads as
// an empty list.
func (c *ApplicationsController) List(w http.ResponseWriter, r *http.Request) {
	items, err := c.api.MyApplications(r.Context())
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Warn("failed to load my applications")
	}
	props := &applications.IndexProps{
		Rows: mappers.ApplicationsToRows(items, intl.MustT(r.Context(), "Common.UnknownCompany")),
	}
	if err := applications.Index(props).Render(r.Context(), w); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to render my applications")
	}
}
