// Package base holds the layout and the building blocks shared by every page.
package base

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Writer writes markup and keeps the first error so page code stays linear.
type Writer struct {
	w   io.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes trusted markup as is.
func (w *Writer) Raw(parts ...string) {
	for _, p := range parts {
		if w.err != nil {
			return
		}
		_, w.err = io.WriteString(w.w, p)
	}
}

// Text writes escaped text.
func (w *Writer) Text(s string) {
	w.Raw(templ.EscapeString(s))
}

// Attr writes ` name="value"` with the value escaped.
func (w *Writer) Attr(name, value string) {
	w.Raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// AttrIf writes a boolean attribute when cond holds.
func (w *Writer) AttrIf(cond bool, name string) {
	if cond {
		w.Raw(" ", name)
	}
}

func (w *Writer) Render(ctx context.Context, c templ.Component) {
	if w.err != nil || c == nil {
		return
	}
	w.err = c.Render(ctx, w.w)
}

func (w *Writer) Err() error {
	return w.err
}

// Component adapts a render function written against Writer.
func Component(fn func(ctx context.Context, w *Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := NewWriter(out)
		fn(ctx, w)
		return w.Err()
	})
}

// Group renders components one after another.
func Group(components ...templ.Component) templ.Component {
	return Component(func(ctx context.Context, w *Writer) {
		for _, c := range components {
			w.Render(ctx, c)
		}
	})
}
