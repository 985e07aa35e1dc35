package review

import (
	"context"
	"encoding/json"

	"github.com/a-h/templ"

	"github.com/jobsboard/web/components/base"
	"github.com/jobsboard/web/modules/vacancies/presentation/viewmodels"
	"github.com/jobsboard/web/pkg/composables"
	"github.com/jobsboard/web/pkg/jobs"
)

// ReturnPath is where a decision taken on the review page lands.
const ReturnPath = "/admin"

type ShowProps struct {
	Vacancy viewmodels.Vacancy
}

func Show(p *ShowProps) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		v := p.Vacancy
		w.Render(ctx, base.Layout(pageCtx.T("Admin.Review.Title"), base.Component(func(ctx context.Context, w *base.Writer) {
			w.Raw(`<a class="muted" href="/admin">`)
			w.Text(pageCtx.T("Admin.Review.Back"))
			w.Raw(`</a><article class="card detail"><header class="section-header"><h1>`)
			w.Text(v.Title)
			w.Raw(`</h1>`)
			w.Render(ctx, base.StatusBadge(v.Status))
			w.Raw(`</header><dl>`)
			term(w, pageCtx.T("Admin.Review.Company"), v.CompanyName)
			term(w, pageCtx.T("Admin.Review.Location"), v.Location)
			term(w, pageCtx.T("Admin.Review.Category"), v.Category)
			if v.Salary != "" {
				term(w, pageCtx.T("Admin.Review.Salary"), v.Salary)
			}
			if v.CreatedAt != "" {
				term(w, pageCtx.T("Admin.Review.Created"), v.CreatedAt)
			}
			w.Raw(`</dl><h2>`)
			w.Text(pageCtx.T("Admin.Review.Description"))
			w.Raw(`</h2><p class="pre">`)
			w.Text(v.Description)
			w.Raw(`</p>`)
			if v.Status == string(jobs.VacancyPending) {
				w.Raw(`<div class="actions"`)
				if vals, err := json.Marshal(map[string]string{"return": ReturnPath}); err == nil {
					w.Attr("hx-vals", string(vals))
				}
				w.Raw(`>`)
				decision(w, "/admin/vacancies/"+v.ID+"/approve", pageCtx.T("Admin.Actions.Approve"), "primary")
				decision(w, "/admin/vacancies/"+v.ID+"/reject", pageCtx.T("Admin.Actions.Reject"), "danger")
				w.Raw(`</div>`)
			}
			w.Raw(`</article>`)
		})))
	})
}

func term(w *base.Writer, label, value string) {
	w.Raw(`<dt>`)
	w.Text(label)
	w.Raw(`</dt><dd>`)
	w.Text(value)
	w.Raw(`</dd>`)
}

func decision(w *base.Writer, path, label, variant string) {
	w.Raw(`<button type="button"`)
	w.Attr("class", "button "+variant)
	w.Attr("hx-patch", path)
	w.Raw(` hx-swap="none" hx-disabled-elt="this">`)
	w.Text(label)
	w.Raw(`</button>`)
}

func Missing() templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		w.Render(ctx, base.Layout(pageCtx.T("Admin.Review.NotFound"), base.Component(func(ctx context.Context, w *base.Writer) {
			w.Raw(`<div class="card center"><h1>`)
			w.Text(pageCtx.T("Admin.Review.NotFound"))
			w.Raw(`</h1><a class="button" href="/admin">`)
			w.Text(pageCtx.T("Admin.Review.Back"))
			w.Raw(`</a></div>`)
		})))
	})
}
