package base

import (
	"context"

	"github.com/a-h/templ"

	"github.com/jobsboard/web/pkg/composables"
)

// Badge renders a short status label; variant selects the color.
func Badge(text, variant string) templ.Component {
	return Component(func(ctx context.Context, w *Writer) {
		w.Raw(`<span`)
		w.Attr("class", "badge badge-"+variant)
		w.Raw(`>`)
		w.Text(text)
		w.Raw(`</span>`)
	})
}

// StatusBadge labels an entity status via "Status.<status>", falling back to
// the raw value for statuses without a message.
func StatusBadge(status string) templ.Component {
	return Component(func(ctx context.Context, w *Writer) {
		label := composables.UsePageCtx(ctx).TSafe("Status." + status)
		if label == "" {
			label = status
		}
		w.Render(ctx, Badge(label, status))
	})
}
