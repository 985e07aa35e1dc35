package controllers_test

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobsboard/web/modules/core"
	"github.com/jobsboard/web/modules/vacancies"
	"github.com/jobsboard/web/pkg/htmx"
	"github.com/jobsboard/web/pkg/itf"
	"github.com/jobsboard/web/pkg/jobs"
	"github.com/jobsboard/web/pkg/mapping"
)

var (
	seeker  = jobs.Identity{ID: "u1", FullName: "Ada Seeker", Role: jobs.RoleSeeker}
	company = jobs.Identity{ID: "u2", FullName: "Jo Owner", Role: jobs.RoleCompany}
	acme    = jobs.Company{ID: "c1", Name: "Acme", IsApproved: true}
)

func newSuite(t *testing.T) *itf.Suite {
	t.Helper()
	return itf.NewSuite(t, core.NewModule(), vacancies.NewModule())
}

func vacancyList(n int) []jobs.Vacancy {
	out := make([]jobs.Vacancy, n)
	for i := range out {
		out[i] = jobs.Vacancy{
			ID:        fmt.Sprintf("v%d", i+1),
			Title:     fmt.Sprintf("Vacancy %d", i+1),
			Location:  "Tbilisi",
			CompanyID: acme.ID,
			Company:   &acme,
			Status:    jobs.VacancyApproved,
		}
	}
	return out
}

// listing answers GET /vacancies with items and records the query of every call.
type listing struct {
	mu      sync.Mutex
	queries []url.Values
}

func (l *listing) last() url.Values {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.queries) == 0 {
		return nil
	}
	return l.queries[len(l.queries)-1]
}

func serveListing(s *itf.Suite, items []jobs.Vacancy) *listing {
	l := &listing{}
	s.API.Handle(http.MethodGet, "/vacancies", func(w http.ResponseWriter, r *http.Request) {
		l.mu.Lock()
		l.queries = append(l.queries, r.URL.Query())
		l.mu.Unlock()
		itf.WriteJSON(w, http.StatusOK, itf.Many(items, itf.Vacancy))
	})
	return l
}

func TestList_RendersCards(t *testing.T) {
	s := newSuite(t)
	l := serveListing(s, []jobs.Vacancy{{
		ID:        "v1",
		Title:     "Go developer",
		Location:  "Tbilisi",
		CompanyID: "c1",
		SalaryMin: mapping.Pointer(1000.0),
	}})

	s.GET("/?search=go").Do().
		Status(http.StatusOK).
		Contains("Go developer", `href="/vacancies/v1"`, "Unknown company", "1000 - ?", `value="go"`).
		NotContains(`class="pager"`)

	q := l.last()
	assert.Equal(t, "go", q.Get("search"))
	assert.Equal(t, "1", q.Get("page"))
	assert.Equal(t, "12", q.Get("take"))
	assert.False(t, q.Has("category"))
}

func TestList_RedirectsToCanonicalURL(t *testing.T) {
	s := newSuite(t)
	l := serveListing(s, nil)

	s.GET("/?page=1&search=go&utm=x&category=").Do().
		Status(http.StatusSeeOther).
		RedirectsTo("/?search=go")
	s.GET("/?page=-4").Do().
		Status(http.StatusSeeOther).
		RedirectsTo("/")
	assert.Nil(t, l.last())
}

func TestList_FilterChangeResetsPage(t *testing.T) {
	s := newSuite(t)
	l := serveListing(s, nil)

	resp := s.GET("/?search=rust&category=IT").HTMX().
		Header("Hx-Target", "vacancy-list").
		Header("Hx-Current-Url", "http://localhost/?page=3&search=go").
		Do().
		Status(http.StatusOK).
		Contains(`id="vacancy-list"`, "No vacancies found.").
		NotContains("<html")

	assert.Equal(t, "/?category=IT&search=rust", resp.Header().Get("Hx-Push-Url"))
	assert.Equal(t, "1", l.last().Get("page"))
}

func TestList_PageChangeKeepsFilters(t *testing.T) {
	s := newSuite(t)
	l := serveListing(s, vacancyList(12))

	resp := s.GET("/?page=2&search=go").HTMX().
		Header("Hx-Target", "vacancy-list").
		Header("Hx-Current-Url", "http://localhost/?search=go").
		Do().
		Status(http.StatusOK)

	assert.Equal(t, "/?page=2&search=go", resp.Header().Get("Hx-Push-Url"))
	assert.Equal(t, "2", l.last().Get("page"))
	assert.Equal(t, "go", l.last().Get("search"))
	resp.Contains(`href="/?search=go"`, `href="/?page=3&amp;search=go"`)
}

func TestList_PreviousReturnsToFirstPage(t *testing.T) {
	s := newSuite(t)
	l := serveListing(s, vacancyList(12))

	page2 := s.GET("/?page=2&search=go").HTMX().
		Header("Hx-Target", "vacancy-list").
		Header("Hx-Current-Url", "http://localhost/?search=go").
		Do().
		Status(http.StatusOK).
		Contains(`hx-get="/?search=go"`)
	require.Equal(t, "/?page=2&search=go", page2.Header().Get("Hx-Push-Url"))

	resp := s.GET("/?search=go").HTMX().
		Header("Hx-Target", "vacancy-list").
		Header("Hx-Current-Url", "http://localhost/?page=2&search=go").
		Do().
		Status(http.StatusOK).
		Contains("disabled>Previous", `href="/?page=2&amp;search=go"`)

	assert.Equal(t, "/?search=go", resp.Header().Get("Hx-Push-Url"))
	assert.Equal(t, "1", l.last().Get("page"))
	assert.Equal(t, "go", l.last().Get("search"))
}

func TestList_PagerFollowsPageSize(t *testing.T) {
	s := newSuite(t)
	serveListing(s, vacancyList(12))

	s.GET("/").Do().
		Status(http.StatusOK).
		Contains("Vacancy 12", `href="/?page=2"`, "disabled>Previous")
}

func TestList_FailureShowsEmptyList(t *testing.T) {
	s := newSuite(t)
	s.API.Fail(http.MethodGet, "/vacancies", http.StatusInternalServerError, "boom")

	s.GET("/").Do().
		Status(http.StatusOK).
		Contains("No vacancies found.").
		NotContains("boom")
}

func TestShow_ApplyFormOnlyForSeekers(t *testing.T) {
	s := newSuite(t)
	v := vacancyList(1)[0]
	v.Description = "Write Go"
	s.API.JSON(http.MethodGet, "/vacancies/{id}", http.StatusOK, itf.Vacancy(v))

	s.AsUser(seeker).GET("/vacancies/v1").Do().
		Status(http.StatusOK).
		Contains("Vacancy 1", "Acme", "Write Go", `hx-post="/vacancies/v1/apply"`)

	s.AsUser(company).GET("/vacancies/v1").Do().
		Status(http.StatusOK).
		NotContains(`hx-post="/vacancies/v1/apply"`, "Sign in to apply")

	s.Anonymous().GET("/vacancies/v1").Do().
		Status(http.StatusOK).
		Contains("Sign in to apply").
		NotContains(`hx-post="/vacancies/v1/apply"`)
}

func TestShow_Missing(t *testing.T) {
	s := newSuite(t)
	s.API.Fail(http.MethodGet, "/vacancies/{id}", http.StatusNotFound, "Vacancy not found")

	s.GET("/vacancies/nope").Do().
		Status(http.StatusNotFound).
		Contains("Vacancy not found", "Browse jobs")
}

func TestApply_UploadsPDF(t *testing.T) {
	s := newSuite(t)
	var got struct {
		vacancyID, filename string
		content             []byte
	}
	s.API.Handle(http.MethodPost, "/applications", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		got.vacancyID = r.FormValue("vacancyId")
		if f, h, err := r.FormFile("cv"); err == nil {
			got.filename = h.Filename
			got.content, _ = io.ReadAll(f)
			_ = f.Close()
		}
		itf.WriteJSON(w, http.StatusCreated, map[string]any{"_id": "a1"})
	})

	resp := s.AsUser(seeker).POST("/vacancies/v1/apply").HTMX().
		File("cv", "My CV.PDF", []byte("%PDF-1.4 cv")).
		Do().
		Status(http.StatusOK).
		Contains(`id="apply"`)

	toast, ok := resp.Toast()
	require.True(t, ok)
	assert.Equal(t, htmx.ToastSuccess, toast.Variant)
	assert.Equal(t, "Application sent!", toast.Message)
	assert.Equal(t, "v1", got.vacancyID)
	assert.Equal(t, "My CV.PDF", got.filename)
	assert.Equal(t, []byte("%PDF-1.4 cv"), got.content)
	assert.Equal(t, "Bearer token-u1", s.API.LastAuthorization(http.MethodPost, "/applications"))
}

func TestApply_RejectsNonPDFLocally(t *testing.T) {
	s := newSuite(t)
	s.API.JSON(http.MethodPost, "/applications", http.StatusCreated, map[string]any{})

	resp := s.AsUser(seeker).POST("/vacancies/v1/apply").HTMX().
		File("cv", "cv.docx", []byte("PK")).
		Do().
		Status(http.StatusOK)

	toast, ok := resp.Toast()
	require.True(t, ok)
	assert.Equal(t, htmx.ToastError, toast.Variant)
	assert.Equal(t, "Please upload a PDF file", toast.Message)
	assert.Zero(t, s.API.Calls(http.MethodPost, "/applications"))
}

func TestApply_SurfacesAPIMessage(t *testing.T) {
	s := newSuite(t)
	s.API.Fail(http.MethodPost, "/applications", http.StatusConflict, "You have already applied")

	resp := s.AsUser(seeker).POST("/vacancies/v1/apply").
		File("cv", "cv.pdf", []byte("%PDF")).
		Do().
		Status(http.StatusSeeOther).
		RedirectsTo("/vacancies/v1")

	toast, ok := resp.Toast()
	require.True(t, ok)
	assert.Equal(t, "You have already applied", toast.Message)
}

func TestApply_Gate(t *testing.T) {
	s := newSuite(t)
	s.API.JSON(http.MethodPost, "/applications", http.StatusCreated, map[string]any{})

	s.Anonymous().POST("/vacancies/v1/apply").
		File("cv", "cv.pdf", []byte("%PDF")).
		Do().
		Status(http.StatusFound).
		RedirectsTo("/auth/sign-in")

	s.AsUser(company).POST("/vacancies/v1/apply").
		File("cv", "cv.pdf", []byte("%PDF")).
		Do().
		Status(http.StatusForbidden).
		Contains("Access denied")

	assert.Zero(t, s.API.Calls(http.MethodPost, "/applications"))
}
