package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jobsboard/web/pkg/apiclient"
	"github.com/jobsboard/web/pkg/jobs"
	"github.com/jobsboard/web/pkg/listquery"
)

type decisionFunc func(ctx context.Context, id string) error

type companyRow struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Approved bool   `json:"approved"`
}

func toCompanyRows(cs []jobs.Company) []companyRow {
	out := make([]companyRow, 0, len(cs))
	for _, c := range cs {
		out = append(out, companyRow{ID: c.ID, Name: c.Name, Email: c.Email, Approved: c.IsApproved})
	}
	return out
}

type companyListOutput struct {
	Page    int          `json:"page"`
	HasNext bool         `json:"hasNext"`
	Items   []companyRow `json:"items"`
}

func newCompaniesCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "companies",
		Short: "List and moderate companies (admin)",
	}
	cmd.AddCommand(
		newCompaniesListCmd(opts),
		newCompaniesPendingCmd(opts),
		newCompanyDecisionCmd(opts, "approve", "approved", func(c *apiclient.Client) decisionFunc { return c.ApproveCompany }),
		newCompanyDecisionCmd(opts, "ban", "banned", func(c *apiclient.Client) decisionFunc { return c.BanCompany }),
	)
	return cmd
}

func newCompaniesListCmd(opts *globalOptions) *cobra.Command {
	var page int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List companies page by page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if page < 1 {
				page = 1
			}
			size := listquery.Companies.PageSize
			items, err := opts.client(cmd).ListCompanies(cmd.Context(), page, size)
			if err != nil {
				return apiFailure("list companies", err)
			}
			pager := listquery.Pager{Page: page, PageSize: size, Fetched: len(items)}
			return writeJSON(cmd.OutOrStdout(), companyListOutput{
				Page:    page,
				HasNext: pager.HasNext(),
				Items:   toCompanyRows(items),
			})
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "Page, starting at 1")
	return cmd
}

func newCompaniesPendingCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List companies waiting for approval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := opts.client(cmd).PendingCompanies(cmd.Context())
			if err != nil {
				return apiFailure("list pending companies", err)
			}
			return writeJSON(cmd.OutOrStdout(), toCompanyRows(items))
		},
	}
}

func newCompanyDecisionCmd(opts *globalOptions, use, done string, pick func(*apiclient.Client) decisionFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <company-id>",
		Short: "Mark a company " + done,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return decide(cmd, pick(opts.client(cmd)), use+" company", args[0], done)
		},
	}
}

func decide(cmd *cobra.Command, call decisionFunc, what, id, done string) error {
	if err := call(cmd.Context(), id); err != nil {
		return apiFailure(what+" "+id, err)
	}
	return writeJSON(cmd.OutOrStdout(), decisionOutput{ID: id, Action: done})
}
