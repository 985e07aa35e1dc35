package vacancies

import (
	"context"

	"github.com/a-h/templ"

	"github.com/jobsboard/web/components/base"
	"github.com/jobsboard/web/modules/vacancies/presentation/viewmodels"
	"github.com/jobsboard/web/pkg/composables"
	"github.com/jobsboard/web/pkg/jobs"
)

const ApplyID = "apply"

type ShowProps struct {
	Vacancy viewmodels.Vacancy
}

func Show(p *ShowProps) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		v := p.Vacancy
		w.Render(ctx, base.Layout(v.Title, base.Component(func(ctx context.Context, w *base.Writer) {
			w.Raw(`<a class="muted" href="/">`)
			w.Text(pageCtx.T("Vacancies.Detail.Back"))
			w.Raw(`</a><article class="card detail"><h1>`)
			w.Text(v.Title)
			w.Raw(`</h1><p class="muted">`)
			w.Text(v.CompanyName)
			w.Raw(" · ")
			w.Text(v.Location)
			if v.Category != "" {
				w.Raw(" · ")
				w.Text(v.Category)
			}
			w.Raw(`</p>`)
			if v.Salary != "" {
				w.Render(ctx, base.Badge(v.Salary, "salary"))
			}
			w.Raw(`<h2>`)
			w.Text(pageCtx.T("Vacancies.Detail.Description"))
			w.Raw(`</h2><p class="pre">`)
			w.Text(v.Description)
			w.Raw(`</p></article>`)

			st := pageCtx.Session()
			switch {
			case st.Is(jobs.RoleSeeker):
				w.Render(ctx, ApplyForm(v.ID))
			case !st.Authenticated():
				w.Raw(`<section class="card center"><p class="muted">`)
				w.Text(pageCtx.T("Vacancies.Apply.SignIn"))
				w.Raw(`</p><a class="button" href="/auth/sign-in">`)
				w.Text(pageCtx.T("Vacancies.Apply.SignInButton"))
				w.Raw(`</a></section>`)
			}
		})))
	})
}

// ApplyForm is swapped back empty after every attempt.
func ApplyForm(vacancyID string) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		action := "/vacancies/" + vacancyID + "/apply"
		w.Raw(`<section class="card"`)
		w.Attr("id", ApplyID)
		w.Raw(`><h2>`)
		w.Text(pageCtx.T("Vacancies.Apply.Title"))
		w.Raw(`</h2><p class="muted">`)
		w.Text(pageCtx.T("Vacancies.Apply.Description"))
		w.Raw(`</p><form method="post" enctype="multipart/form-data"`)
		w.Attr("action", action)
		w.Attr("hx-post", action)
		w.Attr("hx-target", "#"+ApplyID)
		w.Raw(` hx-swap="outerHTML" hx-encoding="multipart/form-data">`)
		w.Render(ctx, base.Input(base.InputProps{
			Label:    pageCtx.T("Vacancies.Apply.cv"),
			Name:     "cv",
			Type:     "file",
			Required: true,
			Attrs:    templ.Attributes{"accept": ".pdf,application/pdf"},
		}))
		w.Render(ctx, base.Submit(pageCtx.T("Vacancies.Apply.Submit")))
		w.Raw(`</form></section>`)
	})
}

func Missing() templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		w.Render(ctx, base.Layout(pageCtx.T("Vacancies.Detail.NotFound"), base.Component(func(ctx context.Context, w *base.Writer) {
			w.Raw(`<section class="message"><h1>`)
			w.Text(pageCtx.T("Vacancies.Detail.NotFound"))
			w.Raw(`</h1><a class="button" href="/">`)
			w.Text(pageCtx.T("Vacancies.Detail.Browse"))
			w.Raw(`</a></section>`)
		})))
	})
}
