package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jobsboard/web/pkg/jobs"
)

const (
	CompaniesPageSize = 20
	// Large enough to fill a company picker in one request.
	CompaniesPickerSize = 200
)

func (c *Client) ListCompanies(ctx context.Context, page, take int) ([]jobs.Company, error) {
	if page < 1 {
		page = 1
	}
	if take < 1 {
		take = CompaniesPageSize
	}
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("take", strconv.Itoa(take))
	return c.companies(ctx, "/companies", "/companies", query)
}

func (c *Client) PendingCompanies(ctx context.Context) ([]jobs.Company, error) {
	return c.companies(ctx, "/companies/pending", "/companies/pending", nil)
}

func (c *Client) ApproveCompany(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodPatch, "/companies/{id}/approve", "/companies/"+escape(id)+"/approve", nil, nil)
}

func (c *Client) BanCompany(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodPatch, "/companies/{id}/ban", "/companies/"+escape(id)+"/ban", nil, nil)
}

func (c *Client) companies(ctx context.Context, route, path string, query url.Values) ([]jobs.Company, error) {
	var out []companyDTO
	if err := c.get(ctx, route, path, query, &out); err != nil {
		return nil, err
	}
	return mapSlice(out, companyDTO.toCompany), nil
}
