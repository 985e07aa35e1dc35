package controllers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/jobsboard/web/components/base"
	"github.com/jobsboard/web/modules/company/presentation/controllers/dtos"
	"github.com/jobsboard/web/modules/company/presentation/templates/pages/dashboard"
	"github.com/jobsboard/web/modules/company/presentation/templates/pages/vacancies"
	"github.com/jobsboard/web/modules/vacancies/presentation/mappers"
	"github.com/jobsboard/web/pkg/apiclient"
	"github.com/jobsboard/web/pkg/application"
	"github.com/jobsboard/web/pkg/composables"
	"github.com/jobsboard/web/pkg/gate"
	"github.com/jobsboard/web/pkg/htmx"
	"github.com/jobsboard/web/pkg/intl"
	"github.com/jobsboard/web/pkg/jobs"
	"github.com/jobsboard/web/pkg/middleware"
	"github.com/jobsboard/web/pkg/shared"
)

const dashboardPath = "/company"

// VacanciesController is the company dashboard: the company's own vacancies
// in every status plus create, edit and delete.
type VacanciesController struct {
	app application.Application
	api *apiclient.Client
}

func NewVacanciesController(app application.Application) application.Controller {
	return &VacanciesController{app: app, api: app.API()}
}

func (c *VacanciesController) Key() string {
	return "/company"
}

func (c *VacanciesController) Register(r *mux.Router) {
	router := r.PathPrefix("/company").Subrouter()
	router.Use(middleware.PageStack(c.app)...)
	router.Use(middleware.RequireRole(gate.Role(jobs.RoleCompany), c.app.Sessions(), base.AccessDenied()))
	router.HandleFunc("", c.Dashboard).Methods(http.MethodGet)
	router.HandleFunc("/vacancies/new", c.GetNew).Methods(http.MethodGet)
	router.HandleFunc("/vacancies/new", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/vacancies/{id}/edit", c.GetEdit).Methods(http.MethodGet)
	router.HandleFunc("/vacancies/{id}/edit", c.Update).Methods(http.MethodPost)
	router.HandleFunc("/vacancies/{id}/delete", c.Delete).Methods(http.MethodPost)
}

func (c *VacanciesController) Dashboard(w http.ResponseWriter, r *http.Request) {
	items, err := c.api.MyVacancies(r.Context())
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Warn("failed to load company vacancies")
	}
	props := &dashboard.IndexProps{
		Vacancies: mappers.VacanciesToViewModels(items, intl.MustT(r.Context(), "Common.UnknownCompany")),
	}
	render(w, r, dashboard.Index(props))
}

func (c *VacanciesController) GetNew(w http.ResponseWriter, r *http.Request) {
	render(w, r, vacancies.Page(&vacancies.FormProps{Values: &dtos.VacancyDTO{}, Errors: map[string]string{}}))
}

func (c *VacanciesController) Create(w http.ResponseWriter, r *http.Request) {
	dto, err := composables.UseForm(&dtos.VacancyDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	props := &vacancies.FormProps{Values: dto}
	errs, ok := dto.Ok(r.Context())
	if !ok {
		props.Errors = errs
		renderForm(w, r, vacancies.Page(props), vacancies.Form(props))
		return
	}

	created, err := c.api.CreateVacancy(r.Context(), dto.ToInput())
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Info("vacancy create rejected")
		c.formFailed(w, r, props, apiclient.MessageOr(err, intl.MustT(r.Context(), "Company.Vacancy.CreateFailed")))
		return
	}
	composables.UseLogger(r.Context()).WithField("vacancy", created.ID).Info("vacancy created")
	shared.FlashToast(w, htmx.ToastSuccess, intl.MustT(r.Context(), "Company.Vacancy.Created"))
	shared.Redirect(w, r, dashboardPath)
}

// own finds id among the company's vacancies; the API has no owner-scoped
// single vacancy route.
func (c *VacanciesController) own(r *http.Request, id string) (jobs.Vacancy, bool) {
	items, err := c.api.MyVacancies(r.Context())
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Warn("failed to load company vacancies")
		return jobs.Vacancy{}, false
	}
	for _, v := range items {
		if v.ID == id {
			return v, true
		}
	}
	return jobs.Vacancy{}, false
}

func (c *VacanciesController) GetEdit(w http.ResponseWriter, r *http.Request) {
	id, _ := shared.ParseID(r)
	v, ok := c.own(r, id)
	if !ok {
		shared.FlashToast(w, htmx.ToastError, intl.MustT(r.Context(), "Company.Vacancy.NotFound"))
		shared.Redirect(w, r, dashboardPath)
		return
	}
	render(w, r, vacancies.Page(&vacancies.FormProps{ID: id, Values: dtos.VacancyDTOFrom(v), Errors: map[string]string{}}))
}

func (c *VacanciesController) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := shared.ParseID(r)
	dto, err := composables.UseForm(&dtos.VacancyDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	props := &vacancies.FormProps{ID: id, Values: dto}
	errs, ok := dto.Ok(r.Context())
	if !ok {
		props.Errors = errs
		renderForm(w, r, vacancies.Page(props), vacancies.Form(props))
		return
	}

	if err := c.api.UpdateVacancy(r.Context(), id, dto.ToInput()); err != nil {
		composables.UseLogger(r.Context()).WithError(err).WithField("vacancy", id).Info("vacancy update rejected")
		c.formFailed(w, r, props, apiclient.MessageOr(err, intl.MustT(r.Context(), "Company.Vacancy.UpdateFailed")))
		return
	}
	shared.FlashToast(w, htmx.ToastSuccess, intl.MustT(r.Context(), "Company.Vacancy.Updated"))
	shared.Redirect(w, r, dashboardPath)
}

func (c *VacanciesController) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := shared.ParseID(r)
	logger := composables.UseLogger(r.Context()).WithFields(logrus.Fields{"vacancy": id})
	if err := c.api.DeleteVacancy(r.Context(), id); err != nil {
		logger.WithError(err).Info("vacancy delete rejected")
		shared.FlashToast(w, htmx.ToastError, apiclient.MessageOr(err, intl.MustT(r.Context(), "Company.Vacancy.DeleteFailed")))
		shared.Redirect(w, r, dashboardPath)
		return
	}
	logger.Info("vacancy deleted")
	shared.FlashToast(w, htmx.ToastSuccess, intl.MustT(r.Context(), "Company.Vacancy.Deleted"))
	shared.Redirect(w, r, dashboardPath)
}

func (c *VacanciesController) formFailed(w http.ResponseWriter, r *http.Request, props *vacancies.FormProps, message string) {
	props.Message = message
	if props.Errors == nil {
		props.Errors = map[string]string{}
	}
	if htmx.IsHxRequest(r) {
		htmx.ShowToast(w, htmx.ToastError, message)
	}
	renderForm(w, r, vacancies.Page(props), vacancies.Form(props))
}
