package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOAuth_ReturnsRedirectURLAndCookie(t *testing.T) {
	env := newTestEnv(t, &stubExchanger{})

	rec := env.do(httptest.NewRequest(http.MethodGet, "/oauth", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "csrf_state" {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	require.NotEmpty(t, cookie.Value)
	require.True(t, cookie.HttpOnly)
	require.True(t, cookie.Secure)
	require.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	require.Equal(t, 3600, cookie.MaxAge)
	// 32 bytes of entropy, URL-safe base64 without padding.
	require.Len(t, cookie.Value, 43)

	body := decodeBody(t, rec)
	require.Equal(t, "https://provider.example/authorize?state="+cookie.Value, body["redirect_url"])
}

func TestOAuth_StateIsUniquePerRequest(t *testing.T) {
	env := newTestEnv(t, &stubExchanger{})

	states := map[string]bool{}
	for i := 0; i < 5; i++ {
		rec := env.do(httptest.NewRequest(http.MethodGet, "/oauth", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		for _, c := range rec.Result().Cookies() {
			if c.Name == "csrf_state" {
				states[c.Value] = true
			}
		}
	}
	require.Len(t, states, 5)
}

func TestHome_ServesLandingPage(t *testing.T) {
	env := newTestEnv(t, &stubExchanger{})

	rec := env.do(httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "/oauth")
}
