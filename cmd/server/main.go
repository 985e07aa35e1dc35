package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	internalassets "github.com/jobsboard/web/internal/assets"
	"github.com/jobsboard/web/internal/server"
	"github.com/jobsboard/web/modules"
	"github.com/jobsboard/web/pkg/apiclient"
	"github.com/jobsboard/web/pkg/application"
	"github.com/jobsboard/web/pkg/configuration"
	"github.com/jobsboard/web/pkg/logging"
	"github.com/jobsboard/web/pkg/metrics"
	"github.com/jobsboard/web/pkg/session"
	"github.com/jobsboard/web/pkg/viewstate"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			configuration.Use().Unload()
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	defer conf.Unload()
	logger := conf.Logger()

	if conf.OpenTelemetry.Enabled {
		tracingCleanup := logging.SetupTracing(
			context.Background(),
			conf.OpenTelemetry.ServiceName,
			conf.OpenTelemetry.TempoURL,
		)
		defer tracingCleanup()
		logger.Info("OpenTelemetry tracing enabled, exporting to Tempo at " + conf.OpenTelemetry.TempoURL)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	api := apiclient.New(apiclient.Options{
		BaseURL:    conf.API.URL,
		Timeout:    conf.API.Timeout,
		Credential: session.CredentialFrom,
		Logger:     logger,
		Metrics:    metrics.NewGatewayMetrics(registry),
	})
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := api.Ping(pingCtx); err != nil {
		logger.WithError(err).Warn("jobs API is not reachable yet at " + conf.API.URL)
	}
	cancelPing()

	views, err := viewstate.New(conf.ViewState)
	if err != nil {
		log.Fatalf("failed to create view state store: %v", err)
	}

	app := application.New(&application.ApplicationOptions{
		API: api,
		Sessions: session.NewManager(
			session.NewResolver(api),
			session.CookieStore{
				Name:   conf.Session.CookieKey,
				MaxAge: conf.Session.Duration,
				Secure: conf.GoAppEnvironment == configuration.Production,
			},
		),
		ViewState: views,
	})
	app.RegisterHashFsAssets(internalassets.HashFS)
	if err := modules.Load(app, modules.BuiltInModules...); err != nil {
		log.Fatalf("failed to load modules: %v", err)
	}

	serverInstance, err := server.Default(&server.DefaultOptions{
		Logger:        logger,
		Configuration: conf,
		Application:   app,
		Entrypoint:    "server",
		Gatherer:      registry,
	})
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log.Printf("Listening on: %s\n", conf.Origin)
	if err := serverInstance.Start(ctx, conf.SocketAddress); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
