package controllers

import (
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/jobsboard/web/components/base"
	"github.com/jobsboard/web/modules/admin/presentation/mappers"
	"github.com/jobsboard/web/modules/admin/presentation/templates/pages/applications"
	vacancymappers "github.com/jobsboard/web/modules/vacancies/presentation/mappers"
	"github.com/jobsboard/web/pkg/apiclient"
	"github.com/jobsboard/web/pkg/application"
	"github.com/jobsboard/web/pkg/composables"
	"github.com/jobsboard/web/pkg/gate"
	"github.com/jobsboard/web/pkg/htmx"
	"github.com/jobsboard/web/pkg/intl"
	"github.com/jobsboard/web/pkg/jobs"
	"github.com/jobsboard/web/pkg/listquery"
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
	return "/admin/applications"
}

func (c *ApplicationsController) Register(r *mux.Router) {
	router := r.PathPrefix("/admin/applications").Subrouter()
	router.Use(middleware.PageStack(c.app)...)
	router.Use(middleware.RequireRole(gate.Role(jobs.RoleAdmin), c.app.Sessions(), base.AccessDenied()))
	router.HandleFunc("", c.List).Methods(http.MethodGet)
}

// List shows every application, optionally narrowed to one company. A failed
// load reads as an empty list.
func (c *ApplicationsController) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := listquery.Applications.Read(r.URL.Query())

	var (
		picker []jobs.Company
		apps   []jobs.Application
	)
	g := new(errgroup.Group)
	g.Go(func() (err error) {
		picker, err = c.api.ListCompanies(ctx, 1, apiclient.CompaniesPickerSize)
		return wrapLoad("company picker", err)
	})
	g.Go(func() (err error) {
		apps, err = c.api.AdminApplications(ctx, q.Get("companyId"))
		return wrapLoad("applications", err)
	})
	if err := g.Wait(); err != nil {
		composables.UseLogger(ctx).WithError(err).Warn("admin applications loaded partially")
	}

	props := &applications.IndexProps{
		Query:          q,
		CompanyOptions: mappers.CompanyOptions(picker, intl.MustT(ctx, "Admin.Applications.AllCompanies")),
		Rows:           vacancymappers.ApplicationsToRows(apps, intl.MustT(ctx, "Common.UnknownCompany")),
	}
	if htmx.IsHxRequest(r) && htmx.Target(r) == applications.ListID {
		render(w, r, applications.List(props))
		return
	}
	render(w, r, applications.Index(props))
}
