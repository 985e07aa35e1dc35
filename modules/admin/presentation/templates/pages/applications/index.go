package applications

import (
	"context"

	"github.com/a-h/templ"

	"github.com/jobsboard/web/components/applications"
	"github.com/jobsboard/web/components/base"
	"github.com/jobsboard/web/pkg/composables"
	"github.com/jobsboard/web/pkg/listquery"
)

const ListID = "admin-application-list"

type IndexProps struct {
	Query          listquery.Query
	CompanyOptions []base.Option
	Rows           []applications.Row
}

func Index(p *IndexProps) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		w.Render(ctx, base.Layout(pageCtx.T("Admin.Applications.Title"), base.Component(func(ctx context.Context, w *base.Writer) {
			w.Raw(`<a class="muted" href="/admin">`)
			w.Text(pageCtx.T("Admin.Review.Back"))
			w.Raw(`</a><h1>`)
			w.Text(pageCtx.T("Admin.Applications.Title"))
			w.Raw(`</h1><form method="get" action="/admin/applications" hx-get="/admin/applications"`)
			w.Attr("hx-target", "#"+ListID)
			w.Raw(` hx-swap="outerHTML" hx-push-url="true" hx-trigger="change">`)
			w.Render(ctx, base.Select(base.SelectProps{
				Label:   pageCtx.T("Admin.Applications.Company"),
				Name:    "companyId",
				Value:   p.Query.Get("companyId"),
				Options: p.CompanyOptions,
			}))
			w.Raw(`</form>`)
			w.Render(ctx, List(p))
		})))
	})
}

func List(p *IndexProps) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		w.Raw(`<div`)
		w.Attr("id", ListID)
		w.Raw(`>`)
		w.Render(ctx, applications.List(applications.ListProps{
			Rows:          p.Rows,
			ShowVacancy:   true,
			ShowCompany:   true,
			ShowApplicant: true,
			Empty:         pageCtx.T("Admin.Applications.Empty"),
		}))
		w.Raw(`</div>`)
	})
}
