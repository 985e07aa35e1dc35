package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/ulule/limiter/v3"

	"github.com/jobsboard/web/modules/core/presentation/controllers"
	"github.com/jobsboard/web/pkg/application"
	"github.com/jobsboard/web/pkg/configuration"
	"github.com/jobsboard/web/pkg/constants"
	"github.com/jobsboard/web/pkg/metrics"
	"github.com/jobsboard/web/pkg/middleware"
	"github.com/jobsboard/web/pkg/routing"
	"github.com/jobsboard/web/pkg/server"
)

type DefaultOptions struct {
	Logger        *logrus.Logger
	Configuration *configuration.Configuration
	Application   application.Application
	Entrypoint    string
	// Gatherer backs the metrics endpoint; the default registry when nil.
	Gatherer prometheus.Gatherer
}

func Default(options *DefaultOptions) (*server.HTTPServer, error) {
	app := options.Application
	conf := options.Configuration

	loggerOpts := middleware.DefaultLoggerOptions()
	loggerOpts.Entrypoint = options.Entrypoint

	middlewares := []mux.MiddlewareFunc{
		middleware.WithLogger(options.Logger, loggerOpts), // creates the root span for each request

		middleware.TracedMiddleware("opsGuard"),
		middleware.OpsGuard(conf, options.Entrypoint),
		middleware.Provide(constants.AppKey, app),
	}

	if conf.RateLimit.Enabled {
		var store limiter.Store
		var err error

		switch conf.RateLimit.Storage {
		case "redis":
			store, err = middleware.NewRedisStore(conf.RateLimit.RedisURL)
			if err != nil {
				options.Logger.WithError(err).Warn("Failed to create Redis store for rate limiting, falling back to memory")
				store = middleware.NewMemoryStore()
			}
		default:
			store = middleware.NewMemoryStore()
		}

		rules, err := routing.LoadAllowlist("", options.Entrypoint)
		if err != nil {
			return nil, err
		}
		classifier := routing.NewClassifier(rules)

		// Only credential submissions are throttled.
		middlewares = append(middlewares,
			middleware.TracedMiddleware("rateLimit"),
			middleware.RateLimit(middleware.RateLimitConfig{
				RequestsPerPeriod: conf.RateLimit.AuthRPM,
				Store:             store,
				Methods:           []string{http.MethodPost},
				Match: func(r *http.Request) bool {
					return classifier.ClassifyPath(r.URL.Path) == routing.RouteClassAuthn
				},
			}),
		)
	}

	middlewares = append(middlewares,
		middleware.TracedMiddleware("requestParams"),
		middleware.RequestParams(),
	)

	app.RegisterMiddleware(middlewares...)

	if conf.Prometheus.Enabled {
		app.RegisterControllers(metrics.NewPrometheusController(conf.Prometheus.Path, options.Gatherer))
	}

	handlerOpts := controllers.ErrorHandlersOptions{
		Entrypoint: options.Entrypoint,
	}
	serverInstance := server.NewHTTPServer(
		app,
		controllers.NotFound(app, handlerOpts),
		controllers.MethodNotAllowed(handlerOpts),
	)
	return serverInstance, nil
}
