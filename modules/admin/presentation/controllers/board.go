package controllers

import (
	"context"

	"github.com/jobsboard/web/modules/admin/presentation/viewmodels"
	vacancies "github.com/jobsboard/web/modules/vacancies/presentation/viewmodels"
	"github.com/jobsboard/web/pkg/mutation"
	"github.com/jobsboard/web/pkg/viewstate"
)

// boardLists are the patchable lists of a stored Board.
type boardLists struct {
	pendingVacancies *mutation.List[vacancies.Vacancy]
	pendingCompanies *mutation.List[viewmodels.Company]
	companies        *mutation.List[viewmodels.Company]
}

func vacancyID(v vacancies.Vacancy) string  { return v.ID }
func companyID(c viewmodels.Company) string { return c.ID }

func listsOf(b viewmodels.Board) boardLists {
	return boardLists{
		pendingVacancies: mutation.NewList(b.PendingVacancies, vacancyID),
		pendingCompanies: mutation.NewList(b.PendingCompanies, companyID),
		companies:        mutation.NewList(b.Companies, companyID),
	}
}

func (l boardLists) writeTo(b *viewmodels.Board) {
	b.PendingVacancies = l.pendingVacancies.Items()
	b.PendingCompanies = l.pendingCompanies.Items()
	b.Companies = l.companies.Items()
}

// boardPatch applies list patches to the Board stored under viewID. before
// and after are the Board around the patch; err is viewstate.ErrNotFound when
// the view expired or was never stored.
type boardPatch struct {
	store  viewstate.Store
	viewID string
	before viewmodels.Board
	after  viewmodels.Board
	err    error
}

func (p *boardPatch) patch(ctx context.Context, build func(l boardLists) []mutation.Patch) mutation.Patch {
	return func() {
		if p.viewID == "" {
			p.err = viewstate.ErrNotFound
			return
		}
		p.err = p.store.Update(ctx, p.viewID, &p.after, func() error {
			p.before = p.after
			l := listsOf(p.after)
			for _, patch := range build(l) {
				patch()
			}
			l.writeTo(&p.after)
			return nil
		})
	}
}

func hasCompany(items []viewmodels.Company, id string) bool {
	for _, c := range items {
		if c.ID == id {
			return true
		}
	}
	return false
}

func hasVacancy(items []vacancies.Vacancy, id string) bool {
	for _, v := range items {
		if v.ID == id {
			return true
		}
	}
	return false
}
