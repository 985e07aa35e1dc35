package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/jobsboard/web/components/base"
	"github.com/jobsboard/web/modules/vacancies/presentation/mappers"
	"github.com/jobsboard/web/modules/vacancies/presentation/templates/pages/vacancies"
	"github.com/jobsboard/web/pkg/apiclient"
	"github.com/jobsboard/web/pkg/application"
	"github.com/jobsboard/web/pkg/composables"
	"github.com/jobsboard/web/pkg/configuration"
	"github.com/jobsboard/web/pkg/gate"
	"github.com/jobsboard/web/pkg/htmx"
	"github.com/jobsboard/web/pkg/intl"
	"github.com/jobsboard/web/pkg/jobs"
	"github.com/jobsboard/web/pkg/listquery"
	"github.com/jobsboard/web/pkg/middleware"
	"github.com/jobsboard/web/pkg/shared"
)

var schema = listquery.Vacancies

type VacanciesController struct {
	app application.Application
	api *apiclient.Client
}

func NewVacanciesController(app application.Application) application.Controller {
	return &VacanciesController{app: app, api: app.API()}
}

func (c *VacanciesController) Key() string {
	return "/"
}

func (c *VacanciesController) Register(r *mux.Router) {
	router := r.NewRoute().Subrouter()
	router.Use(middleware.PageStack(c.app)...)
	router.HandleFunc("/", c.List).Methods(http.MethodGet)
	router.HandleFunc("/vacancies/{id}", c.Show).Methods(http.MethodGet)

	apply := router.PathPrefix("/vacancies/{id}/apply").Subrouter()
	apply.Use(middleware.RequireRole(gate.Role(jobs.RoleSeeker), c.app.Sessions(), base.AccessDenied()))
	apply.HandleFunc("", c.Apply).Methods(http.MethodPost)
}

// query reads the list query of r. A list fragment request is an update
// applied to the query of the page it came from, so a changed filter starts
// over at page 1 while a pager link keeps the filters. A missing page key
// means page 1, the way Values leaves it out of every link.
func (c *VacanciesController) query(r *http.Request, fragment bool) listquery.Query {
	values := composables.LastValues(r.URL.Query())
	requested := schema.Read(values)
	if !fragment {
		return requested
	}

	current := listquery.Query{}
	if u, err := url.Parse(htmx.CurrentUrl(r)); err == nil {
		current = schema.Read(u.Query())
	}
	update := listquery.Update{Filters: make(map[string]string, len(schema.Keys))}
	for _, key := range schema.Keys {
		update.Filters[key] = requested.Get(key)
	}
	update.Page = requested.Page
	return schema.Write(current, update)
}

func (c *VacanciesController) fetch(ctx context.Context, q listquery.Query) ([]jobs.Vacancy, error) {
	return c.api.ListVacancies(ctx, apiclient.VacancyFilter{
		Search:    q.Get("search"),
		Category:  q.Get("category"),
		Location:  q.Get("location"),
		SalaryMin: q.Get("salaryMin"),
		SalaryMax: q.Get("salaryMax"),
		Page:      q.Page,
		Take:      schema.PageSize,
	})
}

func (c *VacanciesController) List(w http.ResponseWriter, r *http.Request) {
	fragment := htmx.IsHxRequest(r) && htmx.Target(r) == vacancies.ListID
	q := c.query(r, fragment)
	canonical := schema.Href("/", q)
	if !htmx.IsHxRequest(r) && r.URL.RequestURI() != canonical {
		http.Redirect(w, r, canonical, http.StatusSeeOther)
		return
	}

	view := listquery.NewView[jobs.Vacancy]()
	snapshot := view.Refetch(r.Context(), q, c.fetch)
	if snapshot.Err != nil {
		composables.UseLogger(r.Context()).WithError(snapshot.Err).Warn("failed to list vacancies")
	}

	props := &vacancies.IndexProps{
		Query:     snapshot.Query,
		Vacancies: mappers.VacanciesToViewModels(snapshot.Items, intl.MustT(r.Context(), "Common.UnknownCompany")),
		Pager: listquery.Pager{
			Page:     snapshot.Query.Page,
			PageSize: schema.PageSize,
			Fetched:  len(snapshot.Items),
		},
	}

	var err error
	if fragment {
		htmx.PushUrl(w, canonical)
		err = vacancies.List(props).Render(r.Context(), w)
	} else {
		err = vacancies.Index(props).Render(r.Context(), w)
	}
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to render vacancies")
	}
}

func (c *VacanciesController) Show(w http.ResponseWriter, r *http.Request) {
	id, _ := shared.ParseID(r)
	v, err := c.api.GetVacancy(r.Context(), id)
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).WithField("vacancy", id).Info("vacancy not available")
		w.WriteHeader(http.StatusNotFound)
		if err := vacancies.Missing().Render(r.Context(), w); err != nil {
			composables.UseLogger(r.Context()).WithError(err).Error("failed to render missing vacancy")
		}
		return
	}

	props := &vacancies.ShowProps{
		Vacancy: mappers.VacancyToViewModel(v, intl.MustT(r.Context(), "Common.UnknownCompany")),
	}
	if err := vacancies.Show(props).Render(r.Context(), w); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to render vacancy")
	}
}

// Apply uploads the CV. The only local check is the .pdf extension; the API
// decides everything else.
func (c *VacanciesController) Apply(w http.ResponseWriter, r *http.Request) {
	id, _ := shared.ParseID(r)
	logger := composables.UseLogger(r.Context()).WithFields(logrus.Fields{"vacancy": id})

	variant, message := c.apply(r, id, logger)
	if htmx.IsHxRequest(r) {
		htmx.ShowToast(w, variant, message)
		if err := vacancies.ApplyForm(id).Render(r.Context(), w); err != nil {
			logger.WithError(err).Error("failed to render apply form")
		}
		return
	}
	shared.FlashToast(w, variant, message)
	http.Redirect(w, r, "/vacancies/"+id, http.StatusSeeOther)
}

func (c *VacanciesController) apply(r *http.Request, id string, logger *logrus.Entry) (htmx.ToastVariant, string) {
	ctx := r.Context()
	if err := r.ParseMultipartForm(configuration.Use().MaxUploadSize); err != nil {
		logger.WithError(err).Info("invalid application upload")
		return htmx.ToastError, intl.MustT(ctx, "Vacancies.Apply.Missing")
	}
	file, header, err := r.FormFile("cv")
	if err != nil {
		return htmx.ToastError, intl.MustT(ctx, "Vacancies.Apply.Missing")
	}
	defer file.Close()

	if !apiclient.IsPDFName(header.Filename) {
		return htmx.ToastError, intl.MustT(ctx, "Vacancies.Apply.NotPDF")
	}
	content, err := io.ReadAll(file)
	if err != nil {
		logger.WithError(err).Warn("failed to read uploaded cv")
		return htmx.ToastError, intl.MustT(ctx, "Vacancies.Apply.Failed")
	}

	err = c.api.Apply(ctx, apiclient.ApplyRequest{VacancyID: id, FileName: header.Filename, CV: content})
	switch {
	case errors.Is(err, apiclient.ErrNotPDF):
		return htmx.ToastError, intl.MustT(ctx, "Vacancies.Apply.NotPDF")
	case err != nil:
		logger.WithError(err).Info("application rejected")
		return htmx.ToastError, apiclient.MessageOr(err, intl.MustT(ctx, "Vacancies.Apply.Failed"))
	}
	logger.Info("application sent")
	return htmx.ToastSuccess, intl.MustT(ctx, "Vacancies.Apply.Success")
}
