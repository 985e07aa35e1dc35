package composables

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobsboard/web/pkg/session"
)

func TestLastValues(t *testing.T) {
	values := url.Values{"search": {"go", "golang"}, "page": {"2"}}
	got := LastValues(values)
	assert.Equal(t, "golang", got.Get("search"))
	assert.Equal(t, "2", got.Get("page"))
}

func TestUseSession_DefaultsToAnonymous(t *testing.T) {
	assert.Equal(t, session.StatusAbsent, UseSession(context.Background()).Status)

	ctx := session.WithState(context.Background(), session.Initial("tok"))
	assert.Equal(t, session.StatusPending, UseSession(ctx).Status)
}

func TestUseFlash_ReadsAndClears(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "toast", Value: base64.URLEncoding.EncodeToString([]byte("saved"))})
	rec := httptest.NewRecorder()

	val, err := UseFlash(rec, req, "toast")
	require.NoError(t, err)
	assert.Equal(t, "saved", string(val))
	require.Len(t, rec.Result().Cookies(), 1)
	assert.Equal(t, -1, rec.Result().Cookies()[0].MaxAge)

	val, err = UseFlash(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil), "toast")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestUseLogger_FallsBack(t *testing.T) {
	assert.NotNil(t, UseLogger(context.Background()))
}
