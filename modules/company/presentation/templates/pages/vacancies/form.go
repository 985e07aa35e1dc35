package vacancies

import (
	"context"

	"github.com/a-h/templ"

	"github.com/jobsboard/web/components/base"
	"github.com/jobsboard/web/modules/company/presentation/controllers/dtos"
	"github.com/jobsboard/web/pkg/composables"
)

const FormID = "vacancy-form"

type FormProps struct {
	// ID is empty for a new vacancy.
	ID      string
	Values  *dtos.VacancyDTO
	Errors  map[string]string
	Message string
}

func (p *FormProps) action() string {
	if p.ID == "" {
		return "/company/vacancies/new"
	}
	return "/company/vacancies/" + p.ID + "/edit"
}

func Page(p *FormProps) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		title := pageCtx.T("Company.Vacancy.NewTitle")
		if p.ID != "" {
			title = pageCtx.T("Company.Vacancy.EditTitle")
		}
		w.Render(ctx, base.Layout(title, base.Component(func(ctx context.Context, w *base.Writer) {
			w.Raw(`<a class="muted" href="/company">`)
			w.Text(pageCtx.T("Company.Vacancy.Back"))
			w.Raw(`</a><h1>`)
			w.Text(title)
			w.Raw(`</h1><p class="muted">`)
			if p.ID == "" {
				w.Text(pageCtx.T("Company.Vacancy.NewDescription"))
			} else {
				w.Text(pageCtx.T("Company.Vacancy.EditDescription"))
			}
			w.Raw(`</p>`)
			w.Render(ctx, Form(p))
		})))
	})
}

func Form(p *FormProps) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		v := p.Values
		if v == nil {
			v = &dtos.VacancyDTO{}
		}
		w.Raw(`<form class="card" method="post"`)
		w.Attr("id", FormID)
		w.Attr("action", p.action())
		w.Attr("hx-post", p.action())
		w.Attr("hx-target", "#"+FormID)
		w.Raw(` hx-swap="outerHTML">`)
		w.Render(ctx, base.Alert(p.Message))
		w.Render(ctx, base.Input(base.InputProps{Label: pageCtx.T("Vacancy.title"), Name: "title", Value: v.Title, Error: p.Errors["title"], Required: true}))
		w.Render(ctx, base.Textarea(base.TextareaProps{Label: pageCtx.T("Vacancy.description"), Name: "description", Value: v.Description, Error: p.Errors["description"], Required: true}))
		w.Render(ctx, base.Input(base.InputProps{Label: pageCtx.T("Vacancy.category"), Name: "category", Value: v.Category, Error: p.Errors["category"], Required: true}))
		w.Render(ctx, base.Input(base.InputProps{Label: pageCtx.T("Vacancy.location"), Name: "location", Value: v.Location, Error: p.Errors["location"], Required: true}))
		w.Render(ctx, base.Input(base.InputProps{Label: pageCtx.T("Vacancy.salaryMin"), Name: "salaryMin", Type: "number", Value: v.SalaryMin, Error: p.Errors["salaryMin"]}))
		w.Render(ctx, base.Input(base.InputProps{Label: pageCtx.T("Vacancy.salaryMax"), Name: "salaryMax", Type: "number", Value: v.SalaryMax, Error: p.Errors["salaryMax"]}))
		w.Render(ctx, base.Submit(pageCtx.T("Common.Save")))
		w.Raw(`</form>`)
	})
}
