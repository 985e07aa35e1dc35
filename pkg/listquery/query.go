// Package listquery keeps the filter and page state of a list view in the URL
// query string.
package listquery

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

const DefaultPageKey = "page"

// Schema names the recognized filter keys of one list view.
type Schema struct {
	Keys     []string
	PageKey  string
	PageSize int
}

func NewSchema(pageSize int, keys ...string) Schema {
	return Schema{Keys: keys, PageKey: DefaultPageKey, PageSize: pageSize}
}

type Query struct {
	Filters map[string]string
	Page    int
}

// Get returns the filter value for key, empty when unset.
func (q Query) Get(key string) string {
	return q.Filters[key]
}

func (q Query) Equal(other Query) bool {
	if q.page() != other.page() || len(q.Filters) != len(other.Filters) {
		return false
	}
	for k, v := range q.Filters {
		if ov, ok := other.Filters[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

func (q Query) page() int {
	if q.Page < 1 {
		return 1
	}
	return q.Page
}

// Values serializes the query. Empty filters are left out and page 1 is
// implied.
func (q Query) Values(pageKey string) url.Values {
	v := url.Values{}
	for key, value := range q.Filters {
		if value != "" {
			v.Set(key, value)
		}
	}
	if pageKey != "" && q.page() > 1 {
		v.Set(pageKey, strconv.Itoa(q.page()))
	}
	return v
}

// Update is a partial change to a query. A filter mapped to "" is removed.
// Page is applied only when positive.
type Update struct {
	Filters map[string]string
	Page    int
}

// Set is shorthand for a single filter update.
func Set(key, value string) Update {
	return Update{Filters: map[string]string{key: value}}
}

func GoTo(page int) Update {
	return Update{Page: page}
}

func (s Schema) recognizes(key string) bool {
	for _, k := range s.Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Read extracts the query from URL values. Unknown keys are ignored, values
// are trimmed of surrounding spaces and dropped when blank, and a missing,
// unparsable or non-positive page reads as 1. Trimming is part of the
// normalized form: a trimmed value round-trips exactly, " IT" reads as "IT".
func (s Schema) Read(values url.Values) Query {
	q := Query{Filters: map[string]string{}, Page: 1}
	for _, key := range s.Keys {
		if value := strings.TrimSpace(values.Get(key)); value != "" {
			q.Filters[key] = value
		}
	}
	if s.PageKey != "" {
		if page, err := strconv.Atoi(values.Get(s.PageKey)); err == nil && page > 0 {
			q.Page = page
		}
	}
	return q
}

// Write merges update into current. Changing any filter value starts over at
// page 1; a page-only update keeps every filter. Values are trimmed like in
// Read.
func (s Schema) Write(current Query, update Update) Query {
	next := Query{Filters: make(map[string]string, len(current.Filters)), Page: current.page()}
	for k, v := range current.Filters {
		if v != "" {
			next.Filters[k] = v
		}
	}

	changed := false
	for key, value := range update.Filters {
		if !s.recognizes(key) {
			continue
		}
		value = strings.TrimSpace(value)
		if next.Filters[key] == value {
			continue
		}
		changed = true
		if value == "" {
			delete(next.Filters, key)
		} else {
			next.Filters[key] = value
		}
	}

	switch {
	case changed:
		next.Page = 1
	case update.Page > 0:
		next.Page = update.Page
	}
	return next
}

func (s Schema) Encode(q Query) string {
	return s.Values(q).Encode()
}

func (s Schema) Values(q Query) url.Values {
	return q.Values(s.PageKey)
}

// Href builds a link to path carrying q.
func (s Schema) Href(path string, q Query) string {
	encoded := s.Encode(q)
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}

// SortedKeys returns the filter keys of q in a stable order.
func (q Query) SortedKeys() []string {
	keys := make([]string, 0, len(q.Filters))
	for k := range q.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
