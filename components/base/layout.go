package base

import (
	"context"

	"github.com/a-h/templ"

	"github.com/jobsboard/web/internal/assets"
	"github.com/jobsboard/web/pkg/composables"
	"github.com/jobsboard/web/pkg/htmx"
	"github.com/jobsboard/web/pkg/shared"
)

const (
	htmxSrc  = "https://unpkg.com/htmx.org@2.0.4"
	toastsID = "toasts"
)

func assetPath(name string) string {
	return "/assets/" + assets.HashFS.HashName(name)
}

// Layout renders a full page. The toast flash cookie is consumed before the
// first byte is written so the cookie can still be cleared.
func Layout(title string, content templ.Component) templ.Component {
	return Component(func(ctx context.Context, w *Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		toast := pendingToast(ctx)

		w.Raw(`<!DOCTYPE html><html`)
		w.Attr("lang", pageCtx.GetLocale().String())
		w.Raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		w.Text(title)
		w.Raw(" | ")
		w.Text(pageCtx.T("App.Name"))
		w.Raw(`</title><link rel="stylesheet"`)
		w.Attr("href", assetPath("css/main.css"))
		w.Raw(`><script defer`)
		w.Attr("src", htmxSrc)
		w.Raw(`></script><script defer`)
		w.Attr("src", assetPath("js/app.js"))
		w.Raw(`></script></head><body hx-boost="true">`)
		w.Render(ctx, Navbar())
		w.Raw(`<main class="container">`)
		w.Render(ctx, content)
		w.Raw(`</main>`)
		w.Raw(`<div class="toasts"`)
		w.Attr("id", toastsID)
		w.Raw(`>`)
		if toast != nil {
			w.Render(ctx, ToastItem(*toast))
		}
		w.Raw(`</div></body></html>`)
	})
}

func pendingToast(ctx context.Context) *htmx.Toast {
	params, ok := composables.UseParams(ctx)
	if !ok || params.Request == nil || params.Writer == nil {
		return nil
	}
	toast, err := composables.UseFlashMap[string, string](params.Writer, params.Request, shared.ToastFlash)
	if err != nil || toast["message"] == "" {
		return nil
	}
	return &htmx.Toast{Variant: htmx.ToastVariant(toast["variant"]), Message: toast["message"]}
}

func ToastItem(t htmx.Toast) templ.Component {
	return Component(func(ctx context.Context, w *Writer) {
		w.Raw(`<div role="status"`)
		w.Attr("class", "toast toast-"+string(t.Variant))
		w.Raw(`>`)
		w.Text(t.Message)
		w.Raw(`</div>`)
	})
}

// Navbar shows the links visible to the current identity. The items were
// filtered by the NavItems middleware.
func Navbar() templ.Component {
	return Component(func(ctx context.Context, w *Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		w.Raw(`<nav class="navbar"><a class="brand" href="/">`)
		w.Text(pageCtx.T("App.Name"))
		w.Raw(`</a><ul>`)
		for _, item := range composables.UseNavItems(ctx) {
			w.Raw(`<li><a`)
			w.Attr("href", item.Href)
			if item.Primary {
				w.Attr("class", "button")
			}
			w.Raw(`>`)
			w.Text(pageCtx.T(item.Name))
			w.Raw(`</a></li>`)
		}
		if identity := pageCtx.Identity(); identity != nil {
			w.Raw(`<li class="who">`)
			w.Text(identity.FullName)
			w.Raw(`</li><li><form method="post" action="/auth/logout"><button type="submit" class="link">`)
			w.Text(pageCtx.T("Nav.Logout"))
			w.Raw(`</button></form></li>`)
		}
		w.Raw(`</ul></nav>`)
	})
}
