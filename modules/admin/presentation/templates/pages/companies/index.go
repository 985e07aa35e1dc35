package companies

import (
	"context"

	"github.com/a-h/templ"

	"github.com/jobsboard/web/components/base"
	"github.com/jobsboard/web/modules/admin/presentation/templates/components"
	"github.com/jobsboard/web/modules/admin/presentation/viewmodels"
	"github.com/jobsboard/web/pkg/composables"
	"github.com/jobsboard/web/pkg/listquery"
)

const ListID = "company-directory"

type IndexProps struct {
	ViewID    string
	Query     listquery.Query
	Companies []viewmodels.Company
	Pager     listquery.Pager
	Message   string
}

func Index(p *IndexProps) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		w.Render(ctx, base.Layout(pageCtx.T("Admin.Companies.Directory"), base.Component(func(ctx context.Context, w *base.Writer) {
			w.Raw(`<a class="muted" href="/admin">`)
			w.Text(pageCtx.T("Admin.Review.Back"))
			w.Raw(`</a><h1>`)
			w.Text(pageCtx.T("Admin.Companies.Directory"))
			w.Raw(`</h1>`)
			w.Render(ctx, List(p))
		})))
	})
}

func List(p *IndexProps) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		w.Raw(`<section class="card"`)
		w.Attr("id", ListID)
		components.ViewVals(w, p.ViewID)
		w.Raw(`>`)
		w.Render(ctx, base.Alert(p.Message))
		w.Render(ctx, components.Companies(p.Companies))
		w.Render(ctx, base.Pager(base.PagerProps{
			Pager: p.Pager,
			Href: func(page int) string {
				return listquery.Companies.Href("/admin/companies", listquery.Companies.Write(p.Query, listquery.GoTo(page)))
			},
			Target: "#" + ListID,
		}))
		w.Raw(`</section>`)
	})
}
