package dtos

import (
	"context"
	"strconv"
	"strings"

	"github.com/jobsboard/web/pkg/apiclient"
	"github.com/jobsboard/web/pkg/constants"
	"github.com/jobsboard/web/pkg/jobs"
	"github.com/jobsboard/web/pkg/shared"
)

const prefix = "Vacancy"

// VacancyDTO is the create and edit form. Salaries are optional numbers; a
// blank salary is left out of the request.
type VacancyDTO struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description" validate:"required"`
	Category    string `form:"category" validate:"required"`
	Location    string `form:"location" validate:"required"`
	SalaryMin   string `form:"salaryMin" validate:"omitempty,numeric"`
	SalaryMax   string `form:"salaryMax" validate:"omitempty,numeric"`
}

func VacancyDTOFrom(v jobs.Vacancy) *VacancyDTO {
	return &VacancyDTO{
		Title:       v.Title,
		Description: v.Description,
		Category:    v.Category,
		Location:    v.Location,
		SalaryMin:   formatSalary(v.SalaryMin),
		SalaryMax:   formatSalary(v.SalaryMax),
	}
}

func formatSalary(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func (d *VacancyDTO) Ok(ctx context.Context) (map[string]string, bool) {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
	d.Category = strings.TrimSpace(d.Category)
	d.Location = strings.TrimSpace(d.Location)
	d.SalaryMin = strings.TrimSpace(d.SalaryMin)
	d.SalaryMax = strings.TrimSpace(d.SalaryMax)

	errorMessages := shared.FieldErrors(ctx, prefix, constants.Validate.Struct(d))
	if len(errorMessages) > 0 {
		return errorMessages, false
	}

	minimum, maximum := parseSalary(d.SalaryMin), parseSalary(d.SalaryMax)
	if minimum != nil && *minimum < 0 {
		errorMessages["salaryMin"] = shared.FieldError(ctx, prefix, "salaryMin", "gte", "0")
	}
	if maximum != nil && *maximum < 0 {
		errorMessages["salaryMax"] = shared.FieldError(ctx, prefix, "salaryMax", "gte", "0")
	} else if minimum != nil && maximum != nil && *maximum < *minimum {
		errorMessages["salaryMax"] = shared.FieldError(ctx, prefix, "salaryMax", "gtefield", "salaryMin")
	}
	return errorMessages, len(errorMessages) == 0
}

func parseSalary(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// ToInput must only be called after Ok.
func (d *VacancyDTO) ToInput() apiclient.VacancyInput {
	return apiclient.VacancyInput{
		Title:       d.Title,
		Description: d.Description,
		Category:    d.Category,
		Location:    d.Location,
		SalaryMin:   parseSalary(d.SalaryMin),
		SalaryMax:   parseSalary(d.SalaryMax),
	}
}
