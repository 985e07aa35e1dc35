package dashboard

import (
	"context"

	"github.com/a-h/templ"

	"github.com/jobsboard/web/components/base"
	"github.com/jobsboard/web/modules/vacancies/presentation/viewmodels"
	"github.com/jobsboard/web/pkg/composables"
)

type IndexProps struct {
	Vacancies []viewmodels.Vacancy
}

func Index(p *IndexProps) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		w.Render(ctx, base.Layout(pageCtx.T("Company.Dashboard.Title"), base.Component(func(ctx context.Context, w *base.Writer) {
			w.Raw(`<header class="page-header"><h1>`)
			w.Text(pageCtx.T("Company.Dashboard.Title"))
			w.Raw(`</h1><a class="button" href="/company/vacancies/new">`)
			w.Text(pageCtx.T("Company.Dashboard.Add"))
			w.Raw(`</a></header><p><a href="/company/applications">`)
			w.Text(pageCtx.T("Company.Dashboard.AllApplications"))
			w.Raw(`</a></p>`)
			if len(p.Vacancies) == 0 {
				w.Render(ctx, base.Empty(pageCtx.T("Company.Dashboard.Empty")))
				return
			}
			w.Raw(`<div class="grid">`)
			for _, v := range p.Vacancies {
				w.Render(ctx, card(v))
			}
			w.Raw(`</div>`)
		})))
	})
}

func card(v viewmodels.Vacancy) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		w.Raw(`<article class="card"`)
		w.Attr("id", "vacancy-"+v.ID)
		w.Raw(`><h3>`)
		w.Text(v.Title)
		w.Raw(`</h3><p class="muted">`)
		w.Text(v.Location)
		w.Raw(" · ")
		w.Text(pageCtx.T("Company.Dashboard.Status"))
		w.Raw(": ")
		w.Render(ctx, base.StatusBadge(v.Status))
		w.Raw(`</p><div class="actions"><a class="button secondary"`)
		w.Attr("href", "/company/vacancies/"+v.ID+"/edit")
		w.Raw(`>`)
		w.Text(pageCtx.T("Common.Edit"))
		w.Raw(`</a><a class="button secondary"`)
		w.Attr("href", "/company/applications/"+v.ID)
		w.Raw(`>`)
		w.Text(pageCtx.T("Company.Dashboard.Applications"))
		w.Raw(`</a><form method="post"`)
		w.Attr("action", "/company/vacancies/"+v.ID+"/delete")
		w.Attr("hx-post", "/company/vacancies/"+v.ID+"/delete")
		w.Attr("hx-confirm", pageCtx.T("Company.Dashboard.ConfirmDelete"))
		w.Raw(`><button type="submit" class="button danger" hx-disabled-elt="this">`)
		w.Text(pageCtx.T("Common.Delete"))
		w.Raw(`</button></form></div></article>`)
	})
}
