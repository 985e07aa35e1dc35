package vacancies

import (
	"context"

	"github.com/a-h/templ"

	"github.com/jobsboard/web/components/base"
	"github.com/jobsboard/web/modules/vacancies/presentation/viewmodels"
	"github.com/jobsboard/web/pkg/composables"
	"github.com/jobsboard/web/pkg/listquery"
)

const ListID = "vacancy-list"

type IndexProps struct {
	Query     listquery.Query
	Vacancies []viewmodels.Vacancy
	Pager     listquery.Pager
}

func Index(p *IndexProps) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		w.Render(ctx, base.Layout(pageCtx.T("Vacancies.Meta.Title"), base.Component(func(ctx context.Context, w *base.Writer) {
			w.Raw(`<h1>`)
			w.Text(pageCtx.T("Vacancies.Meta.Title"))
			w.Raw(`</h1>`)
			w.Render(ctx, Filters(p.Query))
			w.Render(ctx, List(p))
		})))
	})
}

// Filters re-requests the list as the user types. Only the list is swapped so
// the inputs keep focus.
func Filters(q listquery.Query) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		w.Raw(`<section class="card"><h2>`)
		w.Text(pageCtx.T("Vacancies.Filters.Title"))
		w.Raw(`</h2><p class="muted">`)
		w.Text(pageCtx.T("Vacancies.Filters.Description"))
		w.Raw(`</p><form class="filters" method="get" action="/" hx-get="/"`)
		w.Attr("hx-target", "#"+ListID)
		w.Raw(` hx-swap="outerHTML show:none" hx-trigger="input changed delay:400ms, change, submit">`)
		for _, f := range []struct{ name, typ string }{
			{"search", "search"},
			{"category", "text"},
			{"location", "text"},
			{"salaryMin", "number"},
			{"salaryMax", "number"},
		} {
			w.Render(ctx, base.Input(base.InputProps{
				Label:       pageCtx.T("Vacancies.Filters." + f.name),
				Name:        f.name,
				Type:        f.typ,
				Value:       q.Get(f.name),
				Placeholder: pageCtx.T("Vacancies.Filters." + f.name),
			}))
		}
		w.Raw(`<a class="button secondary" href="/">`)
		w.Text(pageCtx.T("Vacancies.Filters.Reset"))
		w.Raw(`</a></form></section>`)
	})
}

// List is the fragment swapped on every filter or page change.
func List(p *IndexProps) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		w.Raw(`<div`)
		w.Attr("id", ListID)
		w.Raw(`>`)
		if len(p.Vacancies) == 0 {
			w.Render(ctx, base.Empty(pageCtx.T("Vacancies.Empty")))
		} else {
			w.Raw(`<div class="grid">`)
			for _, v := range p.Vacancies {
				w.Render(ctx, Card(v))
			}
			w.Raw(`</div>`)
		}
		w.Render(ctx, base.Pager(base.PagerProps{
			Pager: p.Pager,
			Href: func(page int) string {
				return listquery.Vacancies.Href("/", listquery.Vacancies.Write(p.Query, listquery.GoTo(page)))
			},
			Target: "#" + ListID,
		}))
		w.Raw(`</div>`)
	})
}

func Card(v viewmodels.Vacancy) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		href := "/vacancies/" + v.ID
		w.Raw(`<article class="card"><h3><a`)
		w.Attr("href", href)
		w.Raw(`>`)
		w.Text(v.Title)
		w.Raw(`</a></h3><p class="muted">`)
		w.Text(v.CompanyName)
		w.Raw(" · ")
		w.Text(v.Location)
		if v.Salary != "" {
			w.Raw(" · ")
			w.Text(v.Salary)
		}
		w.Raw(`</p><p class="clamp">`)
		w.Text(v.Description)
		w.Raw(`</p><a class="button"`)
		w.Attr("href", href)
		w.Raw(`>`)
		w.Text(pageCtx.T("Vacancies.View"))
		w.Raw(`</a></article>`)
	})
}
