package applications

import (
	"context"

	"github.com/a-h/templ"

	"github.com/jobsboard/web/components/applications"
	"github.com/jobsboard/web/components/base"
	"github.com/jobsboard/web/pkg/composables"
)

type IndexProps struct {
	// VacancyTitle is set when the list is limited to one vacancy.
	VacancyTitle string
	Rows         []applications.Row
}

func Index(p *IndexProps) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		title := pageCtx.T("Company.Applications.Title")
		empty := pageCtx.T("Company.Applications.Empty")
		if p.VacancyTitle != "" {
			title = pageCtx.T("Company.Applications.ForVacancy", map[string]interface{}{"Title": p.VacancyTitle})
			empty = pageCtx.T("Company.Applications.VacancyEmpty")
		}
		w.Render(ctx, base.Layout(title, base.Component(func(ctx context.Context, w *base.Writer) {
			w.Raw(`<a class="muted" href="/company">`)
			w.Text(pageCtx.T("Company.Vacancy.Back"))
			w.Raw(`</a><h1>`)
			w.Text(title)
			w.Raw(`</h1>`)
			if p.VacancyTitle == "" {
				w.Raw(`<p class="muted">`)
				w.Text(pageCtx.T("Company.Applications.Description"))
				w.Raw(`</p>`)
			}
			w.Render(ctx, applications.List(applications.ListProps{
				Rows:          p.Rows,
				ShowVacancy:   p.VacancyTitle == "",
				ShowApplicant: true,
				Empty:         empty,
			}))
		})))
	})
}
