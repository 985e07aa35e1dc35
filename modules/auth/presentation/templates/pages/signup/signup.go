package signup

import (
	"context"

	"github.com/a-h/templ"

	"github.com/jobsboard/web/components/base"
	"github.com/jobsboard/web/pkg/composables"
)

func Choose() templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		w.Render(ctx, base.Layout(pageCtx.T("SignUp.Meta.Title"), base.Component(func(ctx context.Context, w *base.Writer) {
			w.Raw(`<section class="card auth"><h1>`)
			w.Text(pageCtx.T("SignUp.Choose.Title"))
			w.Raw(`</h1><p class="muted">`)
			w.Text(pageCtx.T("SignUp.Choose.Description"))
			w.Raw(`</p>`)
			choice(w, "/auth/sign-up/user", pageCtx.T("SignUp.Choose.Seeker"), pageCtx.T("SignUp.Choose.SeekerText"))
			choice(w, "/auth/sign-up/company", pageCtx.T("SignUp.Choose.Company"), pageCtx.T("SignUp.Choose.CompanyText"))
			haveAccount(w, pageCtx.T("SignUp.HaveAccount"), pageCtx.T("Nav.SignIn"))
			w.Raw(`</section>`)
		})))
	})
}

func choice(w *base.Writer, href, title, text string) {
	w.Raw(`<a class="card choice"`)
	w.Attr("href", href)
	w.Raw(`><strong>`)
	w.Text(title)
	w.Raw(`</strong><p class="muted">`)
	w.Text(text)
	w.Raw(`</p></a>`)
}

func haveAccount(w *base.Writer, text, link string) {
	w.Raw(`<p class="muted">`)
	w.Text(text)
	w.Raw(` <a href="/auth/sign-in">`)
	w.Text(link)
	w.Raw(`</a></p>`)
}

type SeekerProps struct {
	FullName string
	Email    string
	Errors   map[string]string
	Message  string
}

func Seeker(p *SeekerProps) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		w.Render(ctx, base.Layout(pageCtx.T("SignUp.Meta.Title"), SeekerForm(p)))
	})
}

func SeekerForm(p *SeekerProps) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		w.Raw(`<section class="card auth" id="sign-up"><h1>`)
		w.Text(pageCtx.T("SignUp.Seeker.Title"))
		w.Raw(`</h1><form method="post" action="/auth/sign-up/user" hx-post="/auth/sign-up/user" hx-target="#sign-up" hx-swap="outerHTML">`)
		w.Render(ctx, base.Alert(p.Message))
		w.Render(ctx, base.Input(base.InputProps{Label: pageCtx.T("SignUp.fullName"), Name: "fullName", Value: p.FullName, Error: p.Errors["fullName"], Required: true}))
		w.Render(ctx, base.Input(base.InputProps{Label: pageCtx.T("SignUp.email"), Name: "email", Type: "email", Value: p.Email, Error: p.Errors["email"], Required: true}))
		w.Render(ctx, base.Input(base.InputProps{Label: pageCtx.T("SignUp.password"), Name: "password", Type: "password", Error: p.Errors["password"], Required: true}))
		w.Render(ctx, base.Submit(pageCtx.T("SignUp.Seeker.Submit")))
		w.Raw(`</form><a href="/auth/sign-up">`)
		w.Text(pageCtx.T("SignUp.BackToOptions"))
		w.Raw(`</a>`)
		haveAccount(w, pageCtx.T("SignUp.HaveAccount"), pageCtx.T("Nav.SignIn"))
		w.Raw(`</section>`)
	})
}

type CompanyProps struct {
	CompanyName string
	Description string
	Email       string
	Phone       string
	Website     string
	FullName    string
	Errors      map[string]string
	Message     string
}

func Company(p *CompanyProps) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		w.Render(ctx, base.Layout(pageCtx.T("SignUp.Meta.Title"), CompanyForm(p)))
	})
}

func CompanyForm(p *CompanyProps) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		w.Raw(`<section class="card auth" id="sign-up"><h1>`)
		w.Text(pageCtx.T("SignUp.Company.Title"))
		w.Raw(`</h1><p class="muted">`)
		w.Text(pageCtx.T("SignUp.Company.Description"))
		w.Raw(`</p><form method="post" action="/auth/sign-up/company" hx-post="/auth/sign-up/company" hx-target="#sign-up" hx-swap="outerHTML">`)
		w.Render(ctx, base.Alert(p.Message))
		w.Render(ctx, base.Input(base.InputProps{Label: pageCtx.T("SignUp.companyName"), Name: "companyName", Value: p.CompanyName, Placeholder: "Acme Inc", Error: p.Errors["companyName"], Required: true}))
		w.Render(ctx, base.Input(base.InputProps{Label: pageCtx.T("SignUp.description"), Name: "description", Value: p.Description, Placeholder: "What we do"}))
		w.Render(ctx, base.Input(base.InputProps{Label: pageCtx.T("SignUp.companyEmail"), Name: "email", Type: "email", Value: p.Email, Placeholder: "contact@acme.com", Error: p.Errors["email"], Required: true}))
		w.Render(ctx, base.Input(base.InputProps{Label: pageCtx.T("SignUp.phone"), Name: "phone", Value: p.Phone}))
		w.Render(ctx, base.Input(base.InputProps{Label: pageCtx.T("SignUp.website"), Name: "website", Value: p.Website, Placeholder: "https://...", Error: p.Errors["website"]}))
		w.Render(ctx, base.Input(base.InputProps{Label: pageCtx.T("SignUp.ownerName"), Name: "fullName", Value: p.FullName, Placeholder: "John Doe", Error: p.Errors["fullName"], Required: true}))
		w.Render(ctx, base.Input(base.InputProps{Label: pageCtx.T("SignUp.password"), Name: "password", Type: "password", Error: p.Errors["password"], Required: true}))
		w.Render(ctx, base.Submit(pageCtx.T("SignUp.Company.Submit")))
		w.Raw(`</form><a href="/auth/sign-up">`)
		w.Text(pageCtx.T("SignUp.BackToOptions"))
		w.Raw(`</a></section>`)
	})
}
