package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobsboard/web/pkg/jobs"
)

type tokenKey struct{}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *recordingObserver) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	obs := &recordingObserver{}
	return New(Options{
		BaseURL: srv.URL + "/",
		Timeout: 5 * time.Second,
		Credential: func(ctx context.Context) string {
			token, _ := ctx.Value(tokenKey{}).(string)
			return token
		},
		Metrics: obs,
	}), obs
}

type recordingObserver struct {
	calls []string
}

func (o *recordingObserver) ObserveCall(method, route string, status int, _ time.Duration) {
	o.calls = append(o.calls, method+" "+route)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestClient_AttachesBearerOnlyWhenPresent(t *testing.T) {
	var seen []string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, []any{})
	})

	_, err := client.PendingCompanies(context.Background())
	require.NoError(t, err)
	_, err = client.PendingCompanies(context.WithValue(context.Background(), tokenKey{}, "abc"))
	require.NoError(t, err)

	assert.Equal(t, []string{"", "Bearer abc"}, seen)
}

func TestClient_ErrorMessages(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		body     string
		wantMsg  string
		fallback string
	}{
		{"string message", http.StatusUnauthorized, `{"message":"Invalid credentials"}`, "Invalid credentials", "x"},
		{"array message", http.StatusBadRequest, `{"message":["email must be an email","password too short"]}`, "email must be an email; password too short", "x"},
		{"no message", http.StatusInternalServerError, `{"error":"boom"}`, "Failed to apply", "Failed to apply"},
		{"not json", http.StatusBadGateway, `<html>bad gateway</html>`, "Registration failed", "Registration failed"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			})
			_, err := client.SignIn(context.Background(), SignInRequest{Email: "a@b.c", Password: "secret"})
			require.Error(t, err)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.status, apiErr.Status)
			assert.Equal(t, tc.wantMsg, MessageOr(err, tc.fallback))
		})
	}
}

func TestClient_SignInAndCurrentUser(t *testing.T) {
	client, obs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/sign-in":
			var body SignInRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "jane@example.com", body.Email)
			writeJSON(w, http.StatusCreated, map[string]string{"token": "tok-1"})
		case "/auth/current-user":
			assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
			writeJSON(w, http.StatusOK, map[string]any{
				"_id": "u1", "fullName": "Jane", "email": "jane@example.com", "role": "user",
			})
		default:
			http.NotFound(w, r)
		}
	})

	token, err := client.SignIn(context.Background(), SignInRequest{Email: "jane@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	identity, err := client.CurrentUser(context.WithValue(context.Background(), tokenKey{}, token))
	require.NoError(t, err)
	assert.Equal(t, jobs.Identity{ID: "u1", FullName: "Jane", Email: "jane@example.com", Role: jobs.RoleSeeker}, identity)
	assert.Equal(t, []string{"POST /auth/sign-in", "GET /auth/current-user"}, obs.calls)
}

func TestClient_CompanySignUpOmitsBlankOptionals(t *testing.T) {
	var raw map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		w.WriteHeader(http.StatusCreated)
	})

	err := client.SignUpCompany(context.Background(), CompanySignUpRequest{
		CompanyName: "Acme", Email: "hr@acme.io", FullName: "Bob", Password: "secret1",
	})
	require.NoError(t, err)
	assert.NotContains(t, raw, "website")
	assert.NotContains(t, raw, "phone")
	assert.NotContains(t, raw, "description")
	assert.Equal(t, "Acme", raw["companyName"])
}

func TestClient_ListVacanciesSendsFiltersAndDecodesRefs(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "12", q.Get("take"))
		assert.Equal(t, "go", q.Get("search"))
		assert.False(t, q.Has("category"))
		_, _ = io.WriteString(w, `[
			{"_id":"v1","title":"Go dev","location":"Remote","salaryMin":1000,"status":"approved",
			 "companyId":{"_id":"c1","name":"Acme","isApproved":true}},
			{"_id":"v2","title":"Ops","companyId":"c2","status":"pending"}
		]`)
	})

	list, err := client.ListVacancies(context.Background(), VacancyFilter{Search: "go", Page: 2})
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "c1", list[0].CompanyID)
	require.NotNil(t, list[0].Company)
	assert.Equal(t, "Acme", list[0].CompanyName("Company"))
	assert.Equal(t, "1000 - ?", list[0].SalaryRange())

	assert.Equal(t, "c2", list[1].CompanyID)
	assert.Nil(t, list[1].Company)
	assert.Equal(t, jobs.VacancyPending, list[1].Status)
}

func TestClient_ApplyRejectsNonPDFWithoutNetwork(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	err := client.Apply(context.Background(), ApplyRequest{VacancyID: "v1", FileName: "cv.docx", CV: []byte("x")})
	require.True(t, errors.Is(err, ErrNotPDF))
	assert.Zero(t, calls.Load())
}

func TestClient_ApplySendsMultipart(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "v1", r.FormValue("vacancyId"))
		file, header, err := r.FormFile("cv")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "CV.PDF", header.Filename)
		assert.Equal(t, "application/pdf", header.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
	})

	err := client.Apply(context.Background(), ApplyRequest{
		VacancyID: "v1",
		FileName:  "CV.PDF",
		CV:        []byte("%PDF-1.4\n%mock\n"),
	})
	require.NoError(t, err)
}

func TestClient_ApplicationsDecodePopulatedRefs(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "c9", r.URL.Query().Get("companyId"))
		_, _ = io.WriteString(w, `[{"_id":"a1","cvFileUrl":"cvs/a1.pdf",
			"userId":{"_id":"u1","fullName":"Jane","email":"j@x.io","role":"user"},
			"vacancyId":{"_id":"v1","title":"Go dev","companyId":{"_id":"c9","name":"Acme"}}}]`)
	})

	apps, err := client.AdminApplications(context.Background(), "c9")
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "cvs/a1.pdf", apps[0].CVFileKey)
	require.NotNil(t, apps[0].User)
	assert.Equal(t, "Jane", apps[0].User.FullName)
	require.NotNil(t, apps[0].Vacancy)
	assert.Equal(t, "c9", apps[0].CompanyID())
}

func TestClient_CVURL(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/applications/cv-url", r.URL.Path)
		assert.Equal(t, "cvs/a 1.pdf", r.URL.Query().Get("fileKey"))
		writeJSON(w, http.StatusOK, map[string]string{"url": "https://files.example/signed"})
	})

	u, err := client.CVURL(context.Background(), "cvs/a 1.pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://files.example/signed", u)
}

func TestIsPDFName(t *testing.T) {
	assert.True(t, IsPDFName("cv.pdf"))
	assert.True(t, IsPDFName("CV.Pdf"))
	assert.False(t, IsPDFName("cv.pdf.exe"))
	assert.False(t, IsPDFName("pdf"))
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	c := New(Options{BaseURL: srv.URL})
	require.NoError(t, c.Ping(context.Background()))

	srv.Close()
	require.Error(t, c.Ping(context.Background()))
}
