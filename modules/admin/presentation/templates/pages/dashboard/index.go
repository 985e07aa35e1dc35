package dashboard

import (
	"context"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/jobsboard/web/components/applications"
	"github.com/jobsboard/web/components/base"
	"github.com/jobsboard/web/modules/admin/presentation/templates/components"
	"github.com/jobsboard/web/modules/admin/presentation/viewmodels"
	"github.com/jobsboard/web/pkg/composables"
	"github.com/jobsboard/web/pkg/listquery"
)

const ID = "admin-dashboard"

type IndexProps struct {
	// ViewID names the stored Board; empty when it could not be stored.
	ViewID         string
	Board          viewmodels.Board
	Companies      listquery.Query
	Applications   listquery.Query
	Pager          listquery.Pager
	Rows           []applications.Row
	CompanyOptions []base.Option
	Message        string
}

// Href links to the dashboard with both list queries.
func Href(companies, apps listquery.Query) string {
	values := url.Values{}
	for k, v := range listquery.Companies.Values(companies) {
		values[k] = v
	}
	for k, v := range listquery.Applications.Values(apps) {
		values[k] = v
	}
	if len(values) == 0 {
		return "/admin"
	}
	return "/admin?" + values.Encode()
}

func Index(p *IndexProps) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		w.Render(ctx, base.Layout(pageCtx.T("Admin.Meta.Title"), Content(p)))
	})
}

// Content is swapped whole when the company page or the application filter
// changes, which also starts a new view.
func Content(p *IndexProps) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		w.Raw(`<div class="admin"`)
		w.Attr("id", ID)
		components.ViewVals(w, p.ViewID)
		w.Raw(`>`)
		w.Render(ctx, base.Alert(p.Message))
		w.Render(ctx, components.Counters(p.Board, false))
		w.Render(ctx, components.PendingVacancies(p.Board.PendingVacancies, false))
		w.Render(ctx, components.PendingCompanies(p.Board.PendingCompanies, false))

		w.Raw(`<section class="card" id="all-companies"><header class="section-header"><h2>`)
		w.Text(pageCtx.T("Admin.Companies.Title"))
		w.Raw(`</h2><a href="/admin/companies">`)
		w.Text(pageCtx.T("Admin.Companies.Directory"))
		w.Raw(`</a></header>`)
		w.Render(ctx, components.Companies(p.Board.Companies))
		w.Render(ctx, base.Pager(base.PagerProps{
			Pager: p.Pager,
			Href: func(page int) string {
				return Href(listquery.Companies.Write(p.Companies, listquery.GoTo(page)), p.Applications)
			},
			Target: "#" + ID,
		}))
		w.Raw(`</section>`)

		w.Raw(`<section class="card" id="admin-applications"><header class="section-header"><h2>`)
		w.Text(pageCtx.T("Admin.Applications.Title"))
		w.Raw(`</h2><a href="/admin/applications">`)
		w.Text(pageCtx.T("Admin.Applications.ViewAll"))
		w.Raw(`</a></header><form method="get" action="/admin" hx-get="/admin"`)
		w.Attr("hx-target", "#"+ID)
		w.Raw(` hx-swap="outerHTML" hx-push-url="true" hx-trigger="change">`)
		if p.Companies.Page > 1 {
			w.Raw(`<input type="hidden"`)
			w.Attr("name", listquery.Companies.PageKey)
			w.Attr("value", strconv.Itoa(p.Companies.Page))
			w.Raw(`>`)
		}
		w.Render(ctx, base.Select(base.SelectProps{
			Label:   pageCtx.T("Admin.Applications.Company"),
			Name:    "companyId",
			Value:   p.Applications.Get("companyId"),
			Options: p.CompanyOptions,
		}))
		w.Raw(`</form>`)
		w.Render(ctx, applications.List(applications.ListProps{
			Rows:          p.Rows,
			ShowVacancy:   true,
			ShowCompany:   true,
			ShowApplicant: true,
			Empty:         pageCtx.T("Admin.Applications.Empty"),
		}))
		w.Raw(`</section></div>`)
	})
}
