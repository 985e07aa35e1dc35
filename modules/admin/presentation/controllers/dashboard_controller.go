package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/jobsboard/web/components/base"
	"github.com/jobsboard/web/modules/admin/presentation/mappers"
	"github.com/jobsboard/web/modules/admin/presentation/templates/components"
	"github.com/jobsboard/web/modules/admin/presentation/templates/pages/dashboard"
	"github.com/jobsboard/web/modules/admin/presentation/templates/pages/review"
	"github.com/jobsboard/web/modules/admin/presentation/viewmodels"
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
	"github.com/jobsboard/web/pkg/mutation"
	"github.com/jobsboard/web/pkg/shared"
	"github.com/jobsboard/web/pkg/viewstate"
)

// DashboardController serves the admin dashboard, the vacancy review page
// and every approve, reject and ban decision.
type DashboardController struct {
	app application.Application
	api *apiclient.Client
}

func NewDashboardController(app application.Application) application.Controller {
	return &DashboardController{app: app, api: app.API()}
}

func (c *DashboardController) Key() string {
	return "/admin"
}

func (c *DashboardController) Register(r *mux.Router) {
	router := r.PathPrefix("/admin").Subrouter()
	router.Use(middleware.PageStack(c.app)...)
	router.Use(middleware.RequireRole(gate.Role(jobs.RoleAdmin), c.app.Sessions(), base.AccessDenied()))
	router.HandleFunc("", c.Dashboard).Methods(http.MethodGet)
	router.HandleFunc("/vacancies/{id}", c.Review).Methods(http.MethodGet)
	router.HandleFunc("/vacancies/{id}/approve", c.ApproveVacancy).Methods(http.MethodPatch)
	router.HandleFunc("/vacancies/{id}/reject", c.RejectVacancy).Methods(http.MethodPatch)
	router.HandleFunc("/companies/{id}/approve", c.ApproveCompany).Methods(http.MethodPatch)
	router.HandleFunc("/companies/{id}/ban", c.BanCompany).Methods(http.MethodPatch)
}

func (c *DashboardController) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	values := r.URL.Query()
	companiesQuery := listquery.Companies.Read(values)
	applicationsQuery := listquery.Applications.Read(values)

	var (
		pendingVacancies []jobs.Vacancy
		pendingCompanies []jobs.Company
		companies        []jobs.Company
		picker           []jobs.Company
		apps             []jobs.Application
	)
	// A failed list reads as empty; the others still render.
	g := new(errgroup.Group)
	g.Go(func() (err error) {
		pendingVacancies, err = c.api.PendingVacancies(ctx)
		return wrapLoad("pending vacancies", err)
	})
	g.Go(func() (err error) {
		pendingCompanies, err = c.api.PendingCompanies(ctx)
		return wrapLoad("pending companies", err)
	})
	g.Go(func() (err error) {
		companies, err = c.api.ListCompanies(ctx, companiesQuery.Page, listquery.Companies.PageSize)
		return wrapLoad("companies", err)
	})
	g.Go(func() (err error) {
		picker, err = c.api.ListCompanies(ctx, 1, apiclient.CompaniesPickerSize)
		return wrapLoad("company picker", err)
	})
	g.Go(func() (err error) {
		apps, err = c.api.AdminApplications(ctx, applicationsQuery.Get("companyId"))
		return wrapLoad("applications", err)
	})

	props := &dashboard.IndexProps{
		Companies:    companiesQuery,
		Applications: applicationsQuery,
	}
	if err := g.Wait(); err != nil {
		composables.UseLogger(ctx).WithError(err).Warn("admin dashboard loaded partially")
		props.Message = intl.MustT(ctx, "Admin.LoadFailed")
	}

	unknown := intl.MustT(ctx, "Common.UnknownCompany")
	props.Board = viewmodels.Board{
		Kind:             viewmodels.DashboardBoard,
		PendingVacancies: vacancymappers.VacanciesToViewModels(pendingVacancies, unknown),
		PendingCompanies: mappers.CompaniesToViewModels(pendingCompanies),
		Companies:        mappers.CompaniesToViewModels(companies),
		Applications:     len(apps),
	}
	props.Pager = listquery.Pager{Page: companiesQuery.Page, PageSize: listquery.Companies.PageSize, Fetched: len(companies)}
	props.Rows = vacancymappers.ApplicationsToRows(apps, unknown)
	props.CompanyOptions = mappers.CompanyOptions(picker, intl.MustT(ctx, "Admin.Applications.AllCompanies"))
	props.ViewID = saveBoard(ctx, c.app.ViewState(), props.Board)

	if htmx.IsHxRequest(r) && htmx.Target(r) == dashboard.ID {
		render(w, r, dashboard.Content(props))
		return
	}
	render(w, r, dashboard.Index(props))
}

func (c *DashboardController) Review(w http.ResponseWriter, r *http.Request) {
	id, _ := shared.ParseID(r)
	v, err := c.api.GetVacancyForReview(r.Context(), id)
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).WithField("vacancy", id).Info("vacancy not available for review")
		w.WriteHeader(http.StatusNotFound)
		render(w, r, review.Missing())
		return
	}
	render(w, r, review.Show(&review.ShowProps{
		Vacancy: vacancymappers.VacancyToViewModel(v, intl.MustT(r.Context(), "Common.UnknownCompany")),
	}))
}

func (c *DashboardController) ApproveVacancy(w http.ResponseWriter, r *http.Request) {
	c.decide(w, r, decision{
		action:  "approve-vacancy",
		call:    c.api.ApproveVacancy,
		patches: removePendingVacancy,
		swaps:   vacancySwaps,
		done:    "Admin.Vacancy.Approved",
		failed:  "Admin.Vacancy.ApproveFailed",
	})
}

func (c *DashboardController) RejectVacancy(w http.ResponseWriter, r *http.Request) {
	c.decide(w, r, decision{
		action:  "reject-vacancy",
		call:    c.api.RejectVacancy,
		patches: removePendingVacancy,
		swaps:   vacancySwaps,
		done:    "Admin.Vacancy.Rejected",
		failed:  "Admin.Vacancy.RejectFailed",
	})
}

func (c *DashboardController) ApproveCompany(w http.ResponseWriter, r *http.Request) {
	c.decide(w, r, decision{
		action:  "approve-company",
		call:    c.api.ApproveCompany,
		patches: settleCompany(true),
		swaps:   companySwaps,
		done:    "Admin.Company.Approved",
		failed:  "Admin.Company.ApproveFailed",
	})
}

func (c *DashboardController) BanCompany(w http.ResponseWriter, r *http.Request) {
	c.decide(w, r, decision{
		action:  "ban-company",
		call:    c.api.BanCompany,
		patches: settleCompany(false),
		swaps:   companySwaps,
		done:    "Admin.Company.Banned",
		failed:  "Admin.Company.BanFailed",
	})
}

type decision struct {
	// action prefixes the mutation key, e.g. "approve-company".
	action  string
	call    func(ctx context.Context, id string) error
	patches func(l boardLists, id string) []mutation.Patch
	swaps   func(before, after viewmodels.Board, id string) []templ.Component
	// done and failed are message ids.
	done   string
	failed string
}

// decide runs d against the API and patches the view the request came from.
// The response carries out of band swaps, or asks for a refresh when the view
// is gone, or redirects when the request names an admin return path.
func (c *DashboardController) decide(w http.ResponseWriter, r *http.Request, d decision) {
	ctx := r.Context()
	id, _ := shared.ParseID(r)
	logger := composables.UseLogger(ctx).WithFields(logrus.Fields{"action": d.action, "id": id})

	bp := &boardPatch{store: c.app.ViewState(), viewID: r.FormValue("view")}
	result := c.app.Mutations().Apply(ctx, mutation.Key(d.action, id),
		func(ctx context.Context) error { return d.call(ctx, id) },
		bp.patch(ctx, func(l boardLists) []mutation.Patch { return d.patches(l, id) }),
	)

	switch result.Outcome {
	case mutation.Skipped:
		logger.Debug("duplicate admin decision skipped")
		w.WriteHeader(http.StatusNoContent)
		return
	case mutation.Failed:
		logger.WithError(result.Err).Info("admin decision rejected")
		htmx.Reswap(w, "none")
		htmx.ShowToast(w, htmx.ToastError, result.Message(intl.MustT(ctx, d.failed)))
		w.WriteHeader(http.StatusOK)
		return
	}

	logger.Info("admin decision applied")
	message := intl.MustT(ctx, d.done)
	if ret := r.FormValue("return"); isAdminPath(ret) {
		shared.FlashToast(w, htmx.ToastSuccess, message)
		shared.Redirect(w, r, ret)
		return
	}
	if bp.err != nil {
		if !errors.Is(bp.err, viewstate.ErrNotFound) {
			logger.WithError(bp.err).Error("failed to patch admin view")
		}
		shared.FlashToast(w, htmx.ToastSuccess, message)
		htmx.Refresh(w)
		w.WriteHeader(http.StatusOK)
		return
	}
	htmx.ShowToast(w, htmx.ToastSuccess, message)
	render(w, r, base.Group(d.swaps(bp.before, bp.after, id)...))
}

func removePendingVacancy(l boardLists, id string) []mutation.Patch {
	return []mutation.Patch{mutation.RemoveFrom(l.pendingVacancies, id)}
}

// settleCompany takes the company off the pending list either way and marks
// it live or not in the company list.
func settleCompany(approved bool) func(l boardLists, id string) []mutation.Patch {
	return func(l boardLists, id string) []mutation.Patch {
		return []mutation.Patch{
			mutation.RemoveFrom(l.pendingCompanies, id),
			mutation.PatchIn(l.companies, id, func(c *viewmodels.Company) { c.IsApproved = approved }),
		}
	}
}

func vacancySwaps(before, after viewmodels.Board, id string) []templ.Component {
	if !after.IsDashboard() {
		return nil
	}
	out := []templ.Component{components.Counters(after, true)}
	if hasVacancy(before.PendingVacancies, id) {
		if len(after.PendingVacancies) == 0 {
			out = append(out, components.PendingVacancies(after.PendingVacancies, true))
		} else {
			out = append(out, components.Delete(components.PendingVacancyRowID(id)))
		}
	}
	return out
}

func companySwaps(before, after viewmodels.Board, id string) []templ.Component {
	var out []templ.Component
	if after.IsDashboard() {
		out = append(out, components.Counters(after, true))
		if hasCompany(before.PendingCompanies, id) {
			if len(after.PendingCompanies) == 0 {
				out = append(out, components.PendingCompanies(after.PendingCompanies, true))
			} else {
				out = append(out, components.Delete(components.PendingCompanyRowID(id)))
			}
		}
	}
	for _, co := range after.Companies {
		if co.ID == id {
			out = append(out, components.CompanyRow(co, true))
		}
	}
	return out
}

// saveBoard stores b under a new view id. An empty id means mutations from
// the page fall back to a refresh.
func saveBoard(ctx context.Context, store viewstate.Store, b viewmodels.Board) string {
	id := viewstate.NewID()
	if err := store.Save(ctx, id, b); err != nil {
		composables.UseLogger(ctx).WithError(err).Error("failed to save admin view")
		return ""
	}
	return id
}

func isAdminPath(p string) bool {
	return p == "/admin" || strings.HasPrefix(p, "/admin/")
}

func wrapLoad(what string, err error) error {
	if err != nil {
		return fmt.Errorf("load %s: %w", what, err)
	}
	return nil
}
