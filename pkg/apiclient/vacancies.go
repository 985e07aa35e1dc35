package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jobsboard/web/pkg/jobs"
)

const VacanciesPageSize = 12

// VacancyFilter carries the public listing filters. Blank fields are not sent.
type VacancyFilter struct {
	Search    string
	Category  string
	Location  string
	SalaryMin string
	SalaryMax string
	Page      int
	Take      int
}

func (f VacancyFilter) Values() url.Values {
	page := f.Page
	if page < 1 {
		page = 1
	}
	take := f.Take
	if take < 1 {
		take = VacanciesPageSize
	}
	v := url.Values{}
	v.Set("page", strconv.Itoa(page))
	v.Set("take", strconv.Itoa(take))
	for key, value := range map[string]string{
		"search":    f.Search,
		"category":  f.Category,
		"location":  f.Location,
		"salaryMin": f.SalaryMin,
		"salaryMax": f.SalaryMax,
	} {
		if value != "" {
			v.Set(key, value)
		}
	}
	return v
}

type VacancyInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Location    string   `json:"location"`
	SalaryMin   *float64 `json:"salaryMin,omitempty"`
	SalaryMax   *float64 `json:"salaryMax,omitempty"`
}

func (c *Client) ListVacancies(ctx context.Context, f VacancyFilter) ([]jobs.Vacancy, error) {
	return c.vacancies(ctx, "/vacancies", "/vacancies", f.Values())
}

func (c *Client) GetVacancy(ctx context.Context, id string) (jobs.Vacancy, error) {
	return c.vacancy(ctx, "/vacancies/{id}", "/vacancies/"+escape(id))
}

// MyVacancies lists the vacancies owned by the signed-in company, any status.
func (c *Client) MyVacancies(ctx context.Context) ([]jobs.Vacancy, error) {
	return c.vacancies(ctx, "/vacancies/my", "/vacancies/my", nil)
}

func (c *Client) CreateVacancy(ctx context.Context, in VacancyInput) (jobs.Vacancy, error) {
	var out vacancyDTO
	if err := c.send(ctx, http.MethodPost, "/vacancies", "/vacancies", in, &out); err != nil {
		return jobs.Vacancy{}, err
	}
	return out.toVacancy(), nil
}

func (c *Client) UpdateVacancy(ctx context.Context, id string, in VacancyInput) error {
	return c.send(ctx, http.MethodPatch, "/vacancies/{id}", "/vacancies/"+escape(id), in, nil)
}

func (c *Client) DeleteVacancy(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/vacancies/{id}", "/vacancies/"+escape(id), nil, nil)
}

func (c *Client) PendingVacancies(ctx context.Context) ([]jobs.Vacancy, error) {
	return c.vacancies(ctx, "/vacancies/admin/pending", "/vacancies/admin/pending", nil)
}

// GetVacancyForReview returns a vacancy regardless of its status.
func (c *Client) GetVacancyForReview(ctx context.Context, id string) (jobs.Vacancy, error) {
	return c.vacancy(ctx, "/vacancies/admin/{id}", "/vacancies/admin/"+escape(id))
}

func (c *Client) ApproveVacancy(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodPatch, "/vacancies/admin/{id}/approve", "/vacancies/admin/"+escape(id)+"/approve", nil, nil)
}

func (c *Client) RejectVacancy(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodPatch, "/vacancies/admin/{id}/reject", "/vacancies/admin/"+escape(id)+"/reject", nil, nil)
}

func (c *Client) vacancies(ctx context.Context, route, path string, query url.Values) ([]jobs.Vacancy, error) {
	var out []vacancyDTO
	if err := c.get(ctx, route, path, query, &out); err != nil {
		return nil, err
	}
	return mapSlice(out, vacancyDTO.toVacancy), nil
}

func (c *Client) vacancy(ctx context.Context, route, path string) (jobs.Vacancy, error) {
	var out vacancyDTO
	if err := c.get(ctx, route, path, nil, &out); err != nil {
		return jobs.Vacancy{}, err
	}
	return out.toVacancy(), nil
}
