package main

import (
	"context"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jobsboard/web/pkg/apiclient"
	"github.com/jobsboard/web/pkg/configuration"
	"github.com/jobsboard/web/pkg/logging"
)

type globalOptions struct {
	api     configuration.APIOptions
	token   string
	verbose bool
}

func (o *globalOptions) client(cmd *cobra.Command) *apiclient.Client {
	level := logrus.WarnLevel
	if o.verbose {
		level = logrus.DebugLevel
	}
	logger := logging.ConsoleLogger(level)
	logger.SetOutput(cmd.ErrOrStderr())
	token := o.token
	return apiclient.New(apiclient.Options{
		BaseURL:    o.api.URL,
		Timeout:    o.api.Timeout,
		Credential: func(context.Context) string { return token },
		Logger:     logger,
	})
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	// Flags override the environment, which overrides the defaults.
	_, _ = configuration.LoadEnv([]string{".env", ".env.local"})
	_ = env.Parse(&opts.api)

	cmd := &cobra.Command{
		Use:           "jobsctl",
		Short:         "Operate the jobs API from a terminal",
		SilenceUsage:  true,
	}
	cmd.PersistentFlags().StringVar(&opts.api.URL, "api-url", opts.api.URL, "Jobs API base URL (API_URL)")
	cmd.PersistentFlags().DurationVar(&opts.api.Timeout, "timeout", opts.api.Timeout, "Request timeout (API_TIMEOUT)")
	cmd.PersistentFlags().StringVar(&opts.token, "token", os.Getenv("JOBSCTL_TOKEN"), "Bearer token (JOBSCTL_TOKEN)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every API call")

	cmd.AddCommand(
		newWhoamiCmd(opts),
		newVacanciesCmd(opts),
		newCompaniesCmd(opts),
	)
	return cmd
}
