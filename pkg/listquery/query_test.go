package listquery

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string) url.Values {
	t.Helper()
	v, err := url.ParseQuery(raw)
	require.NoError(t, err)
	return v
}

func TestSchema_ReadTolerance(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		raw      string
		wantPage int
		want     map[string]string
	}{
		"empty":         {"", 1, map[string]string{}},
		"garbage page":  {"page=abc&search=go", 1, map[string]string{"search": "go"}},
		"negative page": {"page=-3", 1, map[string]string{}},
		"zero page":     {"page=0", 1, map[string]string{}},
		"valid page":    {"page=4&location=Tbilisi", 4, map[string]string{"location": "Tbilisi"}},
		"unknown key":   {"sort=desc&category=IT", 1, map[string]string{"category": "IT"}},
		"blank value":   {"search=&category=%20", 1, map[string]string{}},
		"padded value":  {"category=%20IT%20", 1, map[string]string{"category": "IT"}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			q := Vacancies.Read(mustParse(t, tc.raw))
			assert.Equal(t, tc.wantPage, q.Page)
			assert.Equal(t, tc.want, q.Filters)
		})
	}
}

func TestSchema_WriteResetsPageOnFilterChange(t *testing.T) {
	t.Parallel()

	current := Query{Filters: map[string]string{"category": "IT"}, Page: 3}
	next := Vacancies.Write(current, Set("location", "Tbilisi"))

	assert.Equal(t, Query{Filters: map[string]string{"category": "IT", "location": "Tbilisi"}, Page: 1}, next)
	// current is untouched
	assert.Equal(t, 3, current.Page)
	assert.NotContains(t, current.Filters, "location")
}

func TestSchema_WritePageOnlyKeepsFilters(t *testing.T) {
	t.Parallel()

	current := Query{Filters: map[string]string{"category": "IT", "search": "go"}, Page: 3}
	next := Vacancies.Write(current, GoTo(4))

	assert.Equal(t, 4, next.Page)
	assert.Equal(t, current.Filters, next.Filters)
}

func TestSchema_WriteUnchangedFilterKeepsPage(t *testing.T) {
	t.Parallel()

	current := Query{Filters: map[string]string{"category": "IT"}, Page: 2}
	next := Vacancies.Write(current, Update{Filters: map[string]string{"category": "IT"}, Page: 5})

	assert.Equal(t, 5, next.Page)
}

func TestSchema_WriteEmptyDeletesKey(t *testing.T) {
	t.Parallel()

	current := Query{Filters: map[string]string{"category": "IT", "search": "go"}, Page: 2}
	next := Vacancies.Write(current, Set("search", ""))

	assert.Equal(t, map[string]string{"category": "IT"}, next.Filters)
	assert.Equal(t, 1, next.Page)
	assert.Equal(t, "category=IT", Vacancies.Encode(next))
}

func TestSchema_WriteIgnoresUnknownKeys(t *testing.T) {
	t.Parallel()

	current := Query{Filters: map[string]string{}, Page: 2}
	next := Vacancies.Write(current, Set("sort", "desc"))

	assert.Empty(t, next.Filters)
	assert.Equal(t, 2, next.Page)
}

func TestSchema_RoundTripIsLossless(t *testing.T) {
	t.Parallel()

	q := Query{Filters: map[string]string{"search": "go dev", "salaryMin": "1000"}, Page: 3}
	encoded := Vacancies.Encode(q)

	assert.NotContains(t, encoded, "=&")
	assert.True(t, q.Equal(Vacancies.Read(mustParse(t, encoded))))
	assert.Equal(t, "/?page=3&salaryMin=1000&search=go+dev", Vacancies.Href("/", q))
	assert.Equal(t, "/", Vacancies.Href("/", Query{}))
}

func TestSchema_WriteTrimsLikeRead(t *testing.T) {
	t.Parallel()

	q := Vacancies.Write(Query{Page: 2}, Set("category", " IT"))
	assert.Equal(t, "IT", q.Get("category"))
	assert.Equal(t, 1, q.Page)
	assert.True(t, q.Equal(Vacancies.Read(mustParse(t, Vacancies.Encode(q)))))
}

func TestPager(t *testing.T) {
	t.Parallel()

	p := Pager{Page: 1, PageSize: 20, Fetched: 14}
	assert.False(t, p.HasPrev())
	assert.False(t, p.HasNext())
	assert.False(t, p.Visible())
	assert.Equal(t, 1, p.Prev())
	assert.Equal(t, 1, p.Next())

	p = Pager{Page: 2, PageSize: 20, Fetched: 20}
	assert.True(t, p.HasPrev())
	assert.True(t, p.HasNext())
	assert.Equal(t, 1, p.Prev())
	assert.Equal(t, 3, p.Next())

	p = Pager{Page: 3, PageSize: 12, Fetched: 0}
	assert.True(t, p.Visible())
	assert.False(t, p.HasNext())
}
