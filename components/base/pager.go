package base

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/jobsboard/web/pkg/composables"
	"github.com/jobsboard/web/pkg/listquery"
)

type PagerProps struct {
	Pager listquery.Pager
	// Href builds the URL of a page, keeping the other query keys.
	Href func(page int) string
	// Target is the element the list fragment is swapped into.
	Target string
}

// Pager navigates with hx-push-url so the query stays in the address bar, and
// swaps without scrolling.
func Pager(p PagerProps) templ.Component {
	return Component(func(ctx context.Context, w *Writer) {
		if !p.Pager.Visible() {
			return
		}
		pageCtx := composables.UsePageCtx(ctx)
		w.Raw(`<nav class="pager">`)
		pagerLink(w, p, p.Pager.Prev(), p.Pager.HasPrev(), pageCtx.T("Pager.Prev"))
		w.Raw(`<span class="current">`)
		w.Text(pageCtx.T("Pager.Page", map[string]interface{}{"Page": strconv.Itoa(p.Pager.Page)}))
		w.Raw(`</span>`)
		pagerLink(w, p, p.Pager.Next(), p.Pager.HasNext(), pageCtx.T("Pager.Next"))
		w.Raw(`</nav>`)
	})
}

func pagerLink(w *Writer, p PagerProps, page int, enabled bool, label string) {
	if !enabled {
		w.Raw(`<button type="button" class="button" disabled>`)
		w.Text(label)
		w.Raw(`</button>`)
		return
	}
	href := p.Href(page)
	w.Raw(`<a class="button"`)
	w.Attr("href", href)
	w.Attr("hx-get", href)
	w.Attr("hx-target", p.Target)
	w.Raw(` hx-swap="outerHTML show:none" hx-push-url="true">`)
	w.Text(label)
	w.Raw(`</a>`)
}
