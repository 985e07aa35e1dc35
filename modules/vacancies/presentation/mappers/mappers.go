package mappers

import (
	"github.com/jobsboard/web/components/applications"
	"github.com/jobsboard/web/modules/vacancies/presentation/viewmodels"
	"github.com/jobsboard/web/pkg/jobs"
)

const dateLayout = "2006-01-02"

// VacancyToViewModel maps v; unknownCompany stands in for a company the API
// did not populate.
func VacancyToViewModel(v jobs.Vacancy, unknownCompany string) viewmodels.Vacancy {
	vm := viewmodels.Vacancy{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		Category:    v.Category,
		Location:    v.Location,
		CompanyID:   v.CompanyID,
		CompanyName: v.CompanyName(unknownCompany),
		Status:      string(v.Status),
	}
	if v.HasSalary() {
		vm.Salary = v.SalaryRange()
	}
	if !v.CreatedAt.IsZero() {
		vm.CreatedAt = v.CreatedAt.Format(dateLayout)
	}
	return vm
}

func VacanciesToViewModels(vs []jobs.Vacancy, unknownCompany string) []viewmodels.Vacancy {
	out := make([]viewmodels.Vacancy, 0, len(vs))
	for _, v := range vs {
		out = append(out, VacancyToViewModel(v, unknownCompany))
	}
	return out
}

// ApplicationToRow maps a for the application tables. The vacancy and the
// applicant may be unpopulated refs.
func ApplicationToRow(a jobs.Application, unknownCompany string) applications.Row {
	row := applications.Row{
		ID:        a.ID,
		VacancyID: a.VacancyID,
		CVKey:     a.CVFileKey,
	}
	if a.Vacancy != nil {
		row.VacancyTitle = a.Vacancy.Title
		row.CompanyName = a.Vacancy.CompanyName(unknownCompany)
	} else {
		row.VacancyTitle = a.VacancyID
		row.CompanyName = unknownCompany
	}
	if a.User != nil {
		row.ApplicantName = a.User.FullName
		row.ApplicantEmail = a.User.Email
	}
	if !a.CreatedAt.IsZero() {
		row.AppliedAt = a.CreatedAt.Format(dateLayout)
	}
	return row
}

func ApplicationsToRows(as []jobs.Application, unknownCompany string) []applications.Row {
	out := make([]applications.Row, 0, len(as))
	for _, a := range as {
		out = append(out, ApplicationToRow(a, unknownCompany))
	}
	return out
}
