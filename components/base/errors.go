package base

import (
	"context"

	"github.com/a-h/templ"

	"github.com/jobsboard/web/pkg/composables"
)

// AccessDenied is rendered by the role gate. It never redirects.
func AccessDenied() templ.Component {
	return Component(func(ctx context.Context, w *Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		w.Render(ctx, Layout(pageCtx.T("Errors.AccessDenied.Title"), message(
			pageCtx.T("Errors.AccessDenied.Title"),
			pageCtx.T("Errors.AccessDenied.Text"),
			pageCtx.T("Errors.BackHome"),
		)))
	})
}

func NotFound() templ.Component {
	return Component(func(ctx context.Context, w *Writer) {
		pageCtx := composables.UsePageCtx(ctx)
		w.Render(ctx, Layout(pageCtx.T("Errors.NotFound.Title"), message(
			pageCtx.T("Errors.NotFound.Title"),
			pageCtx.T("Errors.NotFound.Text"),
			pageCtx.T("Errors.BackHome"),
		)))
	})
}

func message(title, text, back string) templ.Component {
	return Component(func(ctx context.Context, w *Writer) {
		w.Raw(`<section class="message"><h1>`)
		w.Text(title)
		w.Raw(`</h1><p>`)
		w.Text(text)
		w.Raw(`</p><a class="button" href="/">`)
		w.Text(back)
		w.Raw(`</a></section>`)
	})
}

// Empty is the placeholder of a list with nothing to show.
func Empty(text string) templ.Component {
	return Component(func(ctx context.Context, w *Writer) {
		w.Raw(`<p class="empty">`)
		w.Text(text)
		w.Raw(`</p>`)
	})
}

func Loading() templ.Component {
	return Component(func(ctx context.Context, w *Writer) {
		w.Raw(`<p class="loading" aria-busy="true">`)
		w.Text(composables.UsePageCtx(ctx).T("Common.Loading"))
		w.Raw(`</p>`)
	})
}
