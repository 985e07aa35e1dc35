package applications

import (
	"context"

	"github.com/a-h/templ"

	"github.com/jobsboard/web/components/applications"
	"github.com/jobsboard/web/components/base"
	"github.com/jobsboard/web/pkg/composables"
)

type IndexProps struct {
	Rows []applications.Row
}

func Index(p *IndexProps) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		w.Render(ctx, base.Layout(pageCtx.T("MyApplications.Meta.Title"), base.Component(func(ctx context.Context, w *base.Writer) {
			w.Raw(`<h1>`)
			w.Text(pageCtx.T("MyApplications.Meta.Title"))
			w.Raw(`</h1><p class="muted">`)
			w.Text(pageCtx.T("MyApplications.Description"))
			w.Raw(`</p>`)
			w.Render(ctx, applications.List(applications.ListProps{
				Rows:        p.Rows,
				ShowVacancy: true,
				ShowCompany: true,
				Empty:       pageCtx.T("MyApplications.Empty"),
			}))
			if len(p.Rows) == 0 {
				w.Raw(`<a class="button" href="/">`)
				w.Text(pageCtx.T("MyApplications.Browse"))
				w.Raw(`</a>`)
			}
		})))
	})
}
