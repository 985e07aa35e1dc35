package controllers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/jobsboard/web/modules/auth/presentation/controllers/dtos"
	"github.com/jobsboard/web/modules/auth/presentation/templates/pages/signin"
	"github.com/jobsboard/web/pkg/apiclient"
	"github.com/jobsboard/web/pkg/application"
	"github.com/jobsboard/web/pkg/composables"
	"github.com/jobsboard/web/pkg/htmx"
	"github.com/jobsboard/web/pkg/intl"
	"github.com/jobsboard/web/pkg/middleware"
	"github.com/jobsboard/web/pkg/shared"
)

type SignInController struct {
	app application.Application
	api *apiclient.Client
}

func NewSignInController(app application.Application) application.Controller {
	return &SignInController{app: app, api: app.API()}
}

func (c *SignInController) Key() string {
	return "/auth/sign-in"
}

func (c *SignInController) Register(r *mux.Router) {
	router := r.PathPrefix("/auth").Subrouter()
	router.Use(middleware.PageStack(c.app)...)
	router.HandleFunc("/sign-in", c.Get).Methods(http.MethodGet)
	router.HandleFunc("/sign-in", c.Post).Methods(http.MethodPost)
	router.HandleFunc("/logout", c.Logout).Methods(http.MethodPost)
}

func (c *SignInController) props(email string) *signin.Props {
	return &signin.Props{
		Email:     email,
		Errors:    map[string]string{},
		GoogleURL: c.api.BaseURL() + "/auth/google",
	}
}

func (c *SignInController) Get(w http.ResponseWriter, r *http.Request) {
	if composables.UseSession(r.Context()).Authenticated() {
		shared.Redirect(w, r, "/")
		return
	}
	render(w, r, signin.Index(c.props("")))
}

func (c *SignInController) Post(w http.ResponseWriter, r *http.Request) {
	dto, err := composables.UseForm(&dtos.SignInDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	props := c.props(dto.Email)
	if errs, ok := dto.Ok(r.Context()); !ok {
		props.Errors = errs
		renderForm(w, r, signin.Index(props), signin.Form(props))
		return
	}

	token, err := c.api.SignIn(r.Context(), dto.ToRequest())
	if err != nil || token == "" {
		composables.UseLogger(r.Context()).WithError(err).WithFields(logrus.Fields{
			"email": dto.Email,
		}).Info("sign in rejected")
		props.Message = apiclient.MessageOr(err, intl.MustT(r.Context(), "SignIn.Failed"))
		if htmx.IsHxRequest(r) {
			htmx.ShowToast(w, htmx.ToastError, props.Message)
		}
		renderForm(w, r, signin.Index(props), signin.Form(props))
		return
	}

	c.app.Sessions().Write(w, token)
	shared.FlashToast(w, htmx.ToastSuccess, intl.MustT(r.Context(), "SignIn.Success"))
	shared.Redirect(w, r, "/")
}

// Logout drops the credential cookie. The API keeps no server-side session.
func (c *SignInController) Logout(w http.ResponseWriter, r *http.Request) {
	c.app.Sessions().Clear(w)
	shared.Redirect(w, r, "/")
}
