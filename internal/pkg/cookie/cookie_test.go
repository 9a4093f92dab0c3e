//go:build unit

package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"offer-landing/internal/pkg/config"
	"offer-landing/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(req *http.Request) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func TestSetViewCookie(t *testing.T) {
	c, w := newContext(httptest.NewRequest(http.MethodGet, "/", nil))
	id := uuid.New()

	cookie.SetViewCookie(c, config.CookieConfig{SameSite: "Strict", Secure: true}, id, 30*time.Minute)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	got := cookies[0]
	assert.Equal(t, cookie.ViewCookieName, got.Name)
	assert.Equal(t, id.String(), got.Value)
	assert.Equal(t, 1800, got.MaxAge)
	assert.True(t, got.HttpOnly)
	assert.True(t, got.Secure)
	assert.Equal(t, http.SameSiteStrictMode, got.SameSite)
}

func TestClearViewCookie(t *testing.T) {
	c, w := newContext(httptest.NewRequest(http.MethodGet, "/", nil))

	cookie.ClearViewCookie(c, config.CookieConfig{})

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestGetViewID(t *testing.T) {
	id := uuid.New()
	cases := []struct {
		name   string
		value  string
		wantID uuid.UUID
		wantOK bool
	}{
		{name: "valid", value: id.String(), wantID: id, wantOK: true},
		{name: "garbage", value: "not-a-uuid", wantID: uuid.Nil},
		{name: "missing", wantID: uuid.Nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.value != "" {
				req.AddCookie(&http.Cookie{Name: cookie.ViewCookieName, Value: tc.value})
			}
			c, _ := newContext(req)

			got, ok := cookie.GetViewID(c)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantID, got)
		})
	}
}
