package main

import (
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jobsboard/web/pkg/apiclient"
	"github.com/jobsboard/web/pkg/jobs"
	"github.com/jobsboard/web/pkg/listquery"
)

type vacancyRow struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Category string `json:"category"`
	Salary   string `json:"salary,omitempty"`
	Status   string `json:"status"`
}

func toVacancyRows(vs []jobs.Vacancy) []vacancyRow {
	out := make([]vacancyRow, 0, len(vs))
	for _, v := range vs {
		row := vacancyRow{
			ID:       v.ID,
			Title:    v.Title,
			Company:  v.CompanyName(v.CompanyID),
			Location: v.Location,
			Category: v.Category,
			Status:   string(v.Status),
		}
		if v.HasSalary() {
			row.Salary = v.SalaryRange()
		}
		out = append(out, row)
	}
	return out
}

type vacancyListOutput struct {
	// Query is the board query string the same listing has in the browser.
	Query   string       `json:"query"`
	Page    int          `json:"page"`
	HasNext bool         `json:"hasNext"`
	Items   []vacancyRow `json:"items"`
}

func newVacanciesCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vacancies",
		Short: "List and review vacancies",
	}
	cmd.AddCommand(
		newVacanciesListCmd(opts),
		newVacanciesPendingCmd(opts),
		newVacancyDecisionCmd(opts, "approve", "approved", func(c *apiclient.Client) decisionFunc { return c.ApproveVacancy }),
		newVacancyDecisionCmd(opts, "reject", "rejected", func(c *apiclient.Client) decisionFunc { return c.RejectVacancy }),
	)
	return cmd
}

func newVacanciesListCmd(opts *globalOptions) *cobra.Command {
	var (
		search, category, location string
		salaryMin, salaryMax       string
		page                       int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List approved vacancies with the board's filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema := listquery.Vacancies
			q := schema.Read(url.Values{
				"search":    {search},
				"category":  {category},
				"location":  {location},
				"salaryMin": {salaryMin},
				"salaryMax": {salaryMax},
				"page":      {strconv.Itoa(page)},
			})
			items, err := opts.client(cmd).ListVacancies(cmd.Context(), apiclient.VacancyFilter{
				Search:    q.Get("search"),
				Category:  q.Get("category"),
				Location:  q.Get("location"),
				SalaryMin: q.Get("salaryMin"),
				SalaryMax: q.Get("salaryMax"),
				Page:      q.Page,
				Take:      schema.PageSize,
			})
			if err != nil {
				return apiFailure("list vacancies", err)
			}
			pager := listquery.Pager{Page: q.Page, PageSize: schema.PageSize, Fetched: len(items)}
			return writeJSON(cmd.OutOrStdout(), vacancyListOutput{
				Query:   schema.Encode(q),
				Page:    q.Page,
				HasNext: pager.HasNext(),
				Items:   toVacancyRows(items),
			})
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "Free text search")
	cmd.Flags().StringVar(&category, "category", "", "Category")
	cmd.Flags().StringVar(&location, "location", "", "Location")
	cmd.Flags().StringVar(&salaryMin, "salary-min", "", "Minimum salary")
	cmd.Flags().StringVar(&salaryMax, "salary-max", "", "Maximum salary")
	cmd.Flags().IntVar(&page, "page", 1, "Page, starting at 1")
	return cmd
}

func newVacanciesPendingCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List vacancies waiting for review (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := opts.client(cmd).PendingVacancies(cmd.Context())
			if err != nil {
				return apiFailure("list pending vacancies", err)
			}
			return writeJSON(cmd.OutOrStdout(), toVacancyRows(items))
		},
	}
}

func newVacancyDecisionCmd(opts *globalOptions, use, done string, pick func(*apiclient.Client) decisionFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <vacancy-id>",
		Short: "Mark a pending vacancy " + done + " (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return decide(cmd, pick(opts.client(cmd)), use+" vacancy", args[0], done)
		},
	}
}
