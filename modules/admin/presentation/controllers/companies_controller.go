package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jobsboard/web/components/base"
	"github.com/jobsboard/web/modules/admin/presentation/mappers"
	"github.com/jobsboard/web/modules/admin/presentation/templates/pages/companies"
	"github.com/jobsboard/web/modules/admin/presentation/viewmodels"
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

// CompaniesController is the paged company directory. Approve and ban go
// through the dashboard routes with this page's view id.
type CompaniesController struct {
	app application.Application
	api *apiclient.Client
}

func NewCompaniesController(app application.Application) application.Controller {
	return &CompaniesController{app: app, api: app.API()}
}

func (c *CompaniesController) Key() string {
	return "/admin/companies"
}

func (c *CompaniesController) Register(r *mux.Router) {
	router := r.PathPrefix("/admin/companies").Subrouter()
	router.Use(middleware.PageStack(c.app)...)
	router.Use(middleware.RequireRole(gate.Role(jobs.RoleAdmin), c.app.Sessions(), base.AccessDenied()))
	router.HandleFunc("", c.List).Methods(http.MethodGet)
}

func (c *CompaniesController) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := listquery.Companies.Read(r.URL.Query())
	props := &companies.IndexProps{Query: q}

	items, err := c.api.ListCompanies(ctx, q.Page, listquery.Companies.PageSize)
	if err != nil {
		composables.UseLogger(ctx).WithError(err).Warn("failed to load companies")
		props.Message = apiclient.MessageOr(err, intl.MustT(ctx, "Admin.LoadFailed"))
	}
	props.Companies = mappers.CompaniesToViewModels(items)
	props.Pager = listquery.Pager{Page: q.Page, PageSize: listquery.Companies.PageSize, Fetched: len(items)}
	props.ViewID = saveBoard(ctx, c.app.ViewState(), viewmodels.Board{
		Kind:      viewmodels.DirectoryBoard,
		Companies: props.Companies,
	})

	if htmx.IsHxRequest(r) && htmx.Target(r) == companies.ListID {
		render(w, r, companies.List(props))
		return
	}
	render(w, r, companies.Index(props))
}
