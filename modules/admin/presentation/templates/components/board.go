// Package components renders the admin rows that mutation responses swap out
// of band.
package components

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/a-h/templ"

	"github.com/jobsboard/web/components/base"
	"github.com/jobsboard/web/modules/admin/presentation/viewmodels"
	vacancies "github.com/jobsboard/web/modules/vacancies/presentation/viewmodels"
	"github.com/jobsboard/web/pkg/composables"
)

const (
	CountersID         = "admin-counters"
	PendingVacanciesID = "pending-vacancies"
	PendingCompaniesID = "pending-companies"
)

func PendingVacancyRowID(id string) string { return "pending-vacancy-" + id }
func PendingCompanyRowID(id string) string { return "pending-company-" + id }
func CompanyRowID(id string) string        { return "company-" + id }

func oob(w *base.Writer, swap bool) {
	if swap {
		w.Raw(` hx-swap-oob="true"`)
	}
}

// Delete removes the element with id from the page.
func Delete(id string) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		w.Raw(`<div`)
		w.Attr("id", id)
		w.Raw(` hx-swap-oob="delete"></div>`)
	})
}

func Counters(b viewmodels.Board, swap bool) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		w.Raw(`<div class="counters"`)
		w.Attr("id", CountersID)
		oob(w, swap)
		w.Raw(`>`)
		counter(w, len(b.PendingVacancies), "warning", pageCtx.T("Admin.Counters.PendingVacancies"))
		counter(w, len(b.PendingCompanies), "danger", pageCtx.T("Admin.Counters.PendingCompanies"))
		counter(w, len(b.Companies), "info", pageCtx.T("Admin.Counters.Companies"))
		counter(w, b.Applications, "success", pageCtx.T("Admin.Counters.Applications"))
		w.Raw(`</div>`)
	})
}

func counter(w *base.Writer, n int, variant, label string) {
	w.Raw(`<div class="card counter"><strong class="`, variant, `">`, strconv.Itoa(n), `</strong><span class="muted">`)
	w.Text(label)
	w.Raw(`</span></div>`)
}

// action is a PATCH button; the response carries only out of band swaps.
func action(w *base.Writer, path, label, variant string) {
	w.Raw(`<button type="button"`)
	w.Attr("class", "button small "+variant)
	w.Attr("hx-patch", path)
	w.Raw(` hx-swap="none" hx-disabled-elt="this">`)
	w.Text(label)
	w.Raw(`</button>`)
}

func PendingVacancies(items []vacancies.Vacancy, swap bool) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		w.Raw(`<section class="card"`)
		w.Attr("id", PendingVacanciesID)
		oob(w, swap)
		w.Raw(`><header class="section-header"><h2>`)
		w.Text(pageCtx.T("Admin.PendingVacancies.Title"))
		w.Raw(`</h2>`)
		if len(items) > 0 {
			w.Render(ctx, base.Badge(strconv.Itoa(len(items)), "info"))
		}
		w.Raw(`</header>`)
		if len(items) == 0 {
			w.Render(ctx, base.Empty(pageCtx.T("Admin.PendingVacancies.Empty")))
		}
		for _, v := range items {
			w.Render(ctx, PendingVacancyRow(v))
		}
		w.Raw(`</section>`)
	})
}

func PendingVacancyRow(v vacancies.Vacancy) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		w.Raw(`<div class="row"`)
		w.Attr("id", PendingVacancyRowID(v.ID))
		w.Raw(`><div><strong>`)
		w.Text(v.Title)
		w.Raw(`</strong><p class="muted">`)
		w.Text(v.Location)
		w.Raw(" · ")
		w.Text(v.Category)
		w.Raw(`</p></div><div class="actions"><a class="button small secondary"`)
		w.Attr("href", "/admin/vacancies/"+v.ID)
		w.Raw(`>`)
		w.Text(pageCtx.T("Admin.Actions.View"))
		w.Raw(`</a>`)
		action(w, "/admin/vacancies/"+v.ID+"/approve", pageCtx.T("Admin.Actions.Approve"), "primary")
		action(w, "/admin/vacancies/"+v.ID+"/reject", pageCtx.T("Admin.Actions.Reject"), "danger")
		w.Raw(`</div></div>`)
	})
}

func PendingCompanies(items []viewmodels.Company, swap bool) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		w.Raw(`<section class="card"`)
		w.Attr("id", PendingCompaniesID)
		oob(w, swap)
		w.Raw(`><header class="section-header"><h2>`)
		w.Text(pageCtx.T("Admin.PendingCompanies.Title"))
		w.Raw(`</h2>`)
		if len(items) > 0 {
			w.Render(ctx, base.Badge(strconv.Itoa(len(items)), "danger"))
		}
		w.Raw(`</header>`)
		if len(items) == 0 {
			w.Render(ctx, base.Empty(pageCtx.T("Admin.PendingCompanies.Empty")))
		}
		for _, c := range items {
			w.Render(ctx, PendingCompanyRow(c))
		}
		w.Raw(`</section>`)
	})
}

func PendingCompanyRow(c viewmodels.Company) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		w.Raw(`<div class="row"`)
		w.Attr("id", PendingCompanyRowID(c.ID))
		w.Raw(`><div><strong>`)
		w.Text(c.Name)
		w.Raw(`</strong><p class="muted">`)
		w.Text(c.Email)
		w.Raw(`</p></div><div class="actions">`)
		action(w, "/admin/companies/"+c.ID+"/approve", pageCtx.T("Admin.Actions.Approve"), "primary")
		action(w, "/admin/companies/"+c.ID+"/ban", pageCtx.T("Admin.Actions.Ban"), "danger")
		w.Raw(`</div></div>`)
	})
}

// CompanyRow offers approve for a company that is not live and ban for one
// that is.
func CompanyRow(c viewmodels.Company, swap bool) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		w.Raw(`<div class="row"`)
		w.Attr("id", CompanyRowID(c.ID))
		oob(w, swap)
		w.Raw(`><div><strong>`)
		w.Text(c.Name)
		w.Raw(`</strong><p class="muted">`)
		w.Text(c.Email)
		w.Raw(` `)
		if c.IsApproved {
			w.Render(ctx, base.Badge(pageCtx.T("Admin.Companies.Live"), "success"))
		} else {
			w.Render(ctx, base.Badge(pageCtx.T("Admin.Companies.Pending"), "warning"))
		}
		w.Raw(`</p></div><div class="actions">`)
		if c.IsApproved {
			action(w, "/admin/companies/"+c.ID+"/ban", pageCtx.T("Admin.Actions.Ban"), "danger")
		} else {
			action(w, "/admin/companies/"+c.ID+"/approve", pageCtx.T("Admin.Actions.Approve"), "primary")
		}
		w.Raw(`</div></div>`)
	})
}

// Companies is the paged company list without its pager.
func Companies(items []viewmodels.Company) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		if len(items) == 0 {
			w.Render(ctx, base.Empty(pageCtx.T("Admin.Companies.Empty")))
			return
		}
		w.Raw(`<div class="rows">`)
		for _, c := range items {
			w.Render(ctx, CompanyRow(c, false))
		}
		w.Raw(`</div>`)
	})
}

// ViewVals ties every PATCH issued inside the element to the stored view.
func ViewVals(w *base.Writer, viewID string) {
	if viewID == "" {
		return
	}
	vals, err := json.Marshal(map[string]string{"view": viewID})
	if err != nil {
		return
	}
	w.Attr("hx-vals", string(vals))
}
