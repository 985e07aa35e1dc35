package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/jobsboard/web/pkg/application"
	"github.com/jobsboard/web/pkg/httpapi"
)

const healthTimeout = 3 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	app application.Application
}

func NewHealthController(app application.Application) application.Controller {
	return &HealthController{app: app}
}

func (c *HealthController) Key() string {
	return "/health"
}

func (c *HealthController) Register(r *mux.Router) {
	checks := map[string]httpapi.Check{}
	if api := c.app.API(); api != nil {
		checks["api"] = api.Ping
	}
	if p, ok := c.app.ViewState().(pinger); ok {
		checks["viewstate"] = p.Ping
	}
	r.HandleFunc("/health", httpapi.Health(healthTimeout, checks)).Methods(http.MethodGet)
}
