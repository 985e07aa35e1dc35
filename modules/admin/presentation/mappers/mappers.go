package mappers

import (
	"github.com/jobsboard/web/components/base"
	"github.com/jobsboard/web/modules/admin/presentation/viewmodels"
	"github.com/jobsboard/web/pkg/jobs"
)

func CompanyToViewModel(c jobs.Company) viewmodels.Company {
	return viewmodels.Company{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		IsApproved: c.IsApproved,
	}
}

func CompaniesToViewModels(cs []jobs.Company) []viewmodels.Company {
	out := make([]viewmodels.Company, 0, len(cs))
	for _, c := range cs {
		out = append(out, CompanyToViewModel(c))
	}
	return out
}

// CompanyOptions builds the company filter, led by an "all companies" option.
func CompanyOptions(cs []jobs.Company, all string) []base.Option {
	out := make([]base.Option, 0, len(cs)+1)
	out = append(out, base.Option{Value: "", Label: all})
	for _, c := range cs {
		out = append(out, base.Option{Value: c.ID, Label: c.Name})
	}
	return out
}
