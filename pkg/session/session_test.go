package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobsboard/web/pkg/jobs"
)

type fakeFetcher struct {
	calls    int
	seen     []string
	identity jobs.Identity
	err      error
}

func (f *fakeFetcher) CurrentUser(ctx context.Context) (jobs.Identity, error) {
	f.calls++
	f.seen = append(f.seen, CredentialFrom(ctx))
	return f.identity, f.err
}

func TestResolver_AbsentCredentialSkipsNetwork(t *testing.T) {
	fetcher := &fakeFetcher{}
	st := NewResolver(fetcher).Resolve(context.Background(), "")

	assert.Equal(t, StatusAbsent, st.Status)
	assert.Nil(t, st.Identity)
	assert.Zero(t, fetcher.calls)
}

func TestResolver_Resolved(t *testing.T) {
	fetcher := &fakeFetcher{identity: jobs.Identity{ID: "u1", Role: jobs.RoleCompany}}
	st := NewResolver(fetcher).Resolve(context.Background(), "tok")

	require.Equal(t, StatusResolved, st.Status)
	require.NotNil(t, st.Identity)
	assert.Equal(t, "tok", st.Credential)
	assert.True(t, st.Is(jobs.RoleCompany))
	assert.False(t, st.Is(jobs.RoleAdmin))
	assert.Equal(t, []string{"tok"}, fetcher.seen)
}

func TestResolver_FailureDenies(t *testing.T) {
	for name, fetcher := range map[string]*fakeFetcher{
		"api error":    {err: errors.New("401")},
		"unknown role": {identity: jobs.Identity{ID: "u1"}},
	} {
		t.Run(name, func(t *testing.T) {
			st := NewResolver(fetcher).Resolve(context.Background(), "tok")
			assert.Equal(t, StatusDenied, st.Status)
			assert.Nil(t, st.Identity)
			assert.True(t, st.HasCredential())
		})
	}
}

func TestInitial(t *testing.T) {
	assert.Equal(t, StatusAbsent, Initial("").Status)
	st := Initial("tok")
	assert.Equal(t, StatusPending, st.Status)
	assert.Equal(t, "tok", st.Credential)
}

func TestCookieStore_RoundTrip(t *testing.T) {
	store := CookieStore{Name: "token", MaxAge: 7 * 24 * time.Hour}

	rec := httptest.NewRecorder()
	store.Write(rec, "abc")
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, 604800, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	assert.Equal(t, "abc", store.Read(req))

	rec = httptest.NewRecorder()
	store.Clear(rec)
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, -1, cleared[0].MaxAge)
	assert.Empty(t, cleared[0].Value)
}

func TestCredentialFrom_FallsBackToState(t *testing.T) {
	ctx := WithState(context.Background(), Initial("from-state"))
	assert.Equal(t, "from-state", CredentialFrom(ctx))
	assert.Equal(t, "explicit", CredentialFrom(WithCredential(ctx, "explicit")))
	assert.Empty(t, CredentialFrom(context.Background()))
}
