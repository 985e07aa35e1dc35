package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jobsboard/web/modules/auth/presentation/controllers/dtos"
	"github.com/jobsboard/web/modules/auth/presentation/templates/pages/signup"
	"github.com/jobsboard/web/pkg/apiclient"
	"github.com/jobsboard/web/pkg/application"
	"github.com/jobsboard/web/pkg/composables"
	"github.com/jobsboard/web/pkg/gate"
	"github.com/jobsboard/web/pkg/htmx"
	"github.com/jobsboard/web/pkg/intl"
	"github.com/jobsboard/web/pkg/middleware"
	"github.com/jobsboard/web/pkg/shared"
)

// SignUpController registers seekers and companies. Neither signs the new
// account in: seekers go on to sign in, companies wait for approval.
type SignUpController struct {
	app application.Application
	api *apiclient.Client
}

func NewSignUpController(app application.Application) application.Controller {
	return &SignUpController{app: app, api: app.API()}
}

func (c *SignUpController) Key() string {
	return "/auth/sign-up"
}

func (c *SignUpController) Register(r *mux.Router) {
	router := r.PathPrefix("/auth/sign-up").Subrouter()
	router.Use(middleware.PageStack(c.app)...)
	router.HandleFunc("", c.Choose).Methods(http.MethodGet)
	router.HandleFunc("/user", c.GetSeeker).Methods(http.MethodGet)
	router.HandleFunc("/user", c.PostSeeker).Methods(http.MethodPost)
	router.HandleFunc("/company", c.GetCompany).Methods(http.MethodGet)
	router.HandleFunc("/company", c.PostCompany).Methods(http.MethodPost)
}

func (c *SignUpController) Choose(w http.ResponseWriter, r *http.Request) {
	if composables.UseSession(r.Context()).Authenticated() {
		shared.Redirect(w, r, "/")
		return
	}
	render(w, r, signup.Choose())
}

func (c *SignUpController) GetSeeker(w http.ResponseWriter, r *http.Request) {
	render(w, r, signup.Seeker(&signup.SeekerProps{Errors: map[string]string{}}))
}

func (c *SignUpController) PostSeeker(w http.ResponseWriter, r *http.Request) {
	dto, err := composables.UseForm(&dtos.SeekerSignUpDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	props := &signup.SeekerProps{FullName: dto.FullName, Email: dto.Email, Errors: map[string]string{}}
	if errs, ok := dto.Ok(r.Context()); !ok {
		props.Errors = errs
		renderForm(w, r, signup.Seeker(props), signup.SeekerForm(props))
		return
	}

	if err := c.api.SignUpSeeker(r.Context(), dto.ToRequest()); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Info("seeker sign up rejected")
		props.Message = apiclient.MessageOr(err, intl.MustT(r.Context(), "SignUp.Failed"))
		if htmx.IsHxRequest(r) {
			htmx.ShowToast(w, htmx.ToastError, props.Message)
		}
		renderForm(w, r, signup.Seeker(props), signup.SeekerForm(props))
		return
	}

	shared.FlashToast(w, htmx.ToastSuccess, intl.MustT(r.Context(), "SignUp.Seeker.Success"))
	shared.Redirect(w, r, gate.SignInPath)
}

func (c *SignUpController) GetCompany(w http.ResponseWriter, r *http.Request) {
	render(w, r, signup.Company(&signup.CompanyProps{Errors: map[string]string{}}))
}

func (c *SignUpController) PostCompany(w http.ResponseWriter, r *http.Request) {
	dto, err := composables.UseForm(&dtos.CompanySignUpDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	errs, ok := dto.Ok(r.Context())
	props := &signup.CompanyProps{
		CompanyName: dto.CompanyName,
		Description: dto.Description,
		Email:       dto.Email,
		Phone:       dto.Phone,
		Website:     dto.Website,
		FullName:    dto.FullName,
		Errors:      errs,
	}
	if !ok {
		renderForm(w, r, signup.Company(props), signup.CompanyForm(props))
		return
	}

	if err := c.api.SignUpCompany(r.Context(), dto.ToRequest()); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Info("company sign up rejected")
		props.Message = apiclient.MessageOr(err, intl.MustT(r.Context(), "SignUp.Failed"))
		if htmx.IsHxRequest(r) {
			htmx.ShowToast(w, htmx.ToastError, props.Message)
		}
		renderForm(w, r, signup.Company(props), signup.CompanyForm(props))
		return
	}

	shared.FlashToast(w, htmx.ToastSuccess, intl.MustT(r.Context(), "SignUp.Company.Success"))
	shared.Redirect(w, r, gate.SignInPath)
}
