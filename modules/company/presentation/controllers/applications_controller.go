package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jobsboard/web/components/base"
	"github.com/jobsboard/web/modules/company/presentation/templates/pages/applications"
	"github.com/jobsboard/web/modules/vacancies/presentation/mappers"
	"github.com/jobsboard/web/pkg/apiclient"
	"github.com/jobsboard/web/pkg/application"
	"github.com/jobsboard/web/pkg/composables"
	"github.com/jobsboard/web/pkg/gate"
	"github.com/jobsboard/web/pkg/intl"
	"github.com/jobsboard/web/pkg/jobs"
	"github.com/jobsboard/web/pkg/middleware"
	"github.com/jobsboard/web/pkg/shared"
)

type ApplicationsController struct {
	app application.Application
	api *apiclient.Client
}

func NewApplicationsController(app application.Application) application.Controller {
	return &ApplicationsController{app: app, api: app.API()}
}

func (c *ApplicationsController) Key() string {
	return "/company/applications"
}

func (c *ApplicationsController) Register(r *mux.Router) {
	router := r.PathPrefix("/company/applications").Subrouter()
	router.Use(middleware.PageStack(c.app)...)
	router.Use(middleware.RequireRole(gate.Role(jobs.RoleCompany), c.app.Sessions(), base.AccessDenied()))
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("/{id}", c.ForVacancy).Methods(http.MethodGet)
}

func (c *ApplicationsController) List(w http.ResponseWriter, r *http.Request) {
	items, err := c.api.CompanyApplications(r.Context())
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Warn("failed to load company applications")
	}
	render(w, r, applications.Index(&applications.IndexProps{
		Rows: mappers.ApplicationsToRows(items, intl.MustT(r.Context(), "Common.UnknownCompany")),
	}))
}

// ForVacancy titles the page after the vacancy populated in the first
// application.
func (c *ApplicationsController) ForVacancy(w http.ResponseWriter, r *http.Request) {
	id, _ := shared.ParseID(r)
	items, err := c.api.VacancyApplications(r.Context(), id)
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).WithField("vacancy", id).Warn("failed to load vacancy applications")
	}
	title := intl.MustT(r.Context(), "Company.Applications.DefaultTitle")
	if len(items) > 0 && items[0].Vacancy != nil && items[0].Vacancy.Title != "" {
		title = items[0].Vacancy.Title
	}
	render(w, r, applications.Index(&applications.IndexProps{
		VacancyTitle: title,
		Rows:         mappers.ApplicationsToRows(items, intl.MustT(r.Context(), "Common.UnknownCompany")),
	}))
}
