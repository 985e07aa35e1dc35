package signin

import (
	"context"

	"github.com/a-h/templ"

	"github.com/jobsboard/web/components/base"
	"github.com/jobsboard/web/pkg/composables"
)

type Props struct {
	Email     string
	Errors    map[string]string
	Message   string
	GoogleURL string
}

func Index(p *Props) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		w.Render(ctx, base.Layout(pageCtx.T("SignIn.Meta.Title"), Form(p)))
	})
}

// Form is swapped in place on validation or API errors.
func Form(p *Props) templ.Component {
	return base.Component(func(ctx context.Context, w *base.Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		w.Raw(`<section class="card auth" id="sign-in"><h1>`)
		w.Text(pageCtx.T("SignIn.Meta.Title"))
		w.Raw(`</h1><p class="muted">`)
		w.Text(pageCtx.T("SignIn.Description"))
		w.Raw(`</p><form method="post" action="/auth/sign-in" hx-post="/auth/sign-in" hx-target="#sign-in" hx-swap="outerHTML">`)
		w.Render(ctx, base.Alert(p.Message))
		w.Render(ctx, base.Input(base.InputProps{
			Label:       pageCtx.T("SignIn.email"),
			Name:        "email",
			Type:        "email",
			Value:       p.Email,
			Placeholder: "you@example.com",
			Error:       p.Errors["email"],
			Required:    true,
		}))
		w.Render(ctx, base.Input(base.InputProps{
			Label:    pageCtx.T("SignIn.password"),
			Name:     "password",
			Type:     "password",
			Error:    p.Errors["password"],
			Required: true,
		}))
		w.Render(ctx, base.Submit(pageCtx.T("SignIn.Submit")))
		w.Raw(`</form>`)
		if p.GoogleURL != "" {
			w.Raw(`<a class="button secondary" hx-boost="false"`)
			w.Attr("href", p.GoogleURL)
			w.Raw(`>`)
			w.Text(pageCtx.T("SignIn.Google"))
			w.Raw(`</a>`)
		}
		w.Raw(`<p class="muted">`)
		w.Text(pageCtx.T("SignIn.NoAccount"))
		w.Raw(` <a href="/auth/sign-up">`)
		w.Text(pageCtx.T("Nav.SignUp"))
		w.Raw(`</a></p></section>`)
	})
}
