package base

import (
	"context"
	"sort"
	"strconv"

	"github.com/a-h/templ"
)

type InputProps struct {
	Label       string
	Name        string
	Type        string
	Value       string
	Placeholder string
	Error       string
	Required    bool
	// Attrs are extra attributes written as is, e.g. hx-* wiring.
	Attrs templ.Attributes
}

func Input(p InputProps) templ.Component {
	return Component(func(ctx context.Context, w *Writer) {
		typ := p.Type
		if typ == "" {
			typ = "text"
		}
		w.Raw(`<label class="field"><span>`)
		w.Text(p.Label)
		w.Raw(`</span><input`)
		w.Attr("type", typ)
		w.Attr("name", p.Name)
		w.Attr("id", p.Name)
		if typ != "password" && typ != "file" {
			w.Attr("value", p.Value)
		}
		if p.Placeholder != "" {
			w.Attr("placeholder", p.Placeholder)
		}
		w.AttrIf(p.Required, "required")
		w.AttrIf(p.Error != "", `aria-invalid="true"`)
		writeAttrs(w, p.Attrs)
		w.Raw(`>`)
		fieldError(w, p.Error)
		w.Raw(`</label>`)
	})
}

type TextareaProps struct {
	Label    string
	Name     string
	Value    string
	Error    string
	Rows     int
	Required bool
}

func Textarea(p TextareaProps) templ.Component {
	return Component(func(ctx context.Context, w *Writer) {
		rows := p.Rows
		if rows == 0 {
			rows = 5
		}
		w.Raw(`<label class="field"><span>`)
		w.Text(p.Label)
		w.Raw(`</span><textarea`)
		w.Attr("name", p.Name)
		w.Attr("id", p.Name)
		w.Raw(` rows="`, strconv.Itoa(rows), `"`)
		w.AttrIf(p.Required, "required")
		w.AttrIf(p.Error != "", `aria-invalid="true"`)
		w.Raw(`>`)
		w.Text(p.Value)
		w.Raw(`</textarea>`)
		fieldError(w, p.Error)
		w.Raw(`</label>`)
	})
}

type Option struct {
	Value string
	Label string
}

type SelectProps struct {
	Label    string
	Name     string
	Value    string
	Options  []Option
	Attrs    templ.Attributes
	Disabled bool
}

func Select(p SelectProps) templ.Component {
	return Component(func(ctx context.Context, w *Writer) {
		w.Raw(`<label class="field"><span>`)
		w.Text(p.Label)
		w.Raw(`</span><select`)
		w.Attr("name", p.Name)
		w.Attr("id", p.Name)
		w.AttrIf(p.Disabled, "disabled")
		writeAttrs(w, p.Attrs)
		w.Raw(`>`)
		for _, o := range p.Options {
			w.Raw(`<option`)
			w.Attr("value", o.Value)
			w.AttrIf(o.Value == p.Value, "selected")
			w.Raw(`>`)
			w.Text(o.Label)
			w.Raw(`</option>`)
		}
		w.Raw(`</select></label>`)
	})
}

// Alert is a form level error, e.g. the message returned by the API.
func Alert(text string) templ.Component {
	return Component(func(ctx context.Context, w *Writer) {
		if text == "" {
			return
		}
		w.Raw(`<div class="alert" role="alert">`)
		w.Text(text)
		w.Raw(`</div>`)
	})
}

// Submit disables itself while its request is in flight.
func Submit(label string) templ.Component {
	return Component(func(ctx context.Context, w *Writer) {
		w.Raw(`<button type="submit" class="button" hx-disabled-elt="this">`)
		w.Text(label)
		w.Raw(`</button>`)
	})
}

func fieldError(w *Writer, msg string) {
	if msg == "" {
		return
	}
	w.Raw(`<small class="error">`)
	w.Text(msg)
	w.Raw(`</small>`)
}

// writeAttrs renders string and bool attributes in key order.
func writeAttrs(w *Writer, attrs templ.Attributes) {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		switch v := attrs[k].(type) {
		case string:
			w.Attr(k, v)
		case bool:
			w.AttrIf(v, k)
		}
	}
}
