package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/hangar/internal/service"
	"github.com/forgo/hangar/internal/session"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *session.Store) {
	t.Helper()

	sessions := session.NewStore(session.Config{TTL: time.Minute})
	t.Cleanup(sessions.Stop)

	auth := service.NewAuthService(service.IdentityConfig{
		Domain:      "tenant.auth.example.com",
		ClientID:    "client-id",
		CallbackURL: "http://localhost:8080/callback",
	}, nil, service.NewUserService(&mockUserRepo{}))

	return NewAuthHandler(auth, sessions), sessions
}

func TestAuthIndex_WelcomePage(t *testing.T) {
	t.Parallel()

	h, _ := newAuthHandler(t)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.Index(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome to the Airplane and Cargo API")
	assert.Contains(t, w.Body.String(), `href="/login"`)
}

func TestAuthLogin_RedirectsWithState(t *testing.T) {
	t.Parallel()

	h, _ := newAuthHandler(t)

	r := httptest.NewRequest(http.MethodGet, "/login", nil)
	w := httptest.NewRecorder()
	h.Login(w, r)

	require.Equal(t, http.StatusFound, w.Code)

	var state string
	for _, c := range w.Result().Cookies() {
		if c.Name == "auth_state" {
			state = c.Value
			assert.True(t, c.HttpOnly)
		}
	}
	require.NotEmpty(t, state, "expected state cookie")

	loc, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "tenant.auth.example.com", loc.Host)
	assert.Equal(t, "/authorize", loc.Path)
	assert.Equal(t, state, loc.Query().Get("state"))
	assert.Equal(t, "client-id", loc.Query().Get("client_id"))
	assert.Equal(t, "code", loc.Query().Get("response_type"))
}

func TestAuthCallback_StateMismatch(t *testing.T) {
	t.Parallel()

	h, _ := newAuthHandler(t)

	r := httptest.NewRequest(http.MethodGet, "/callback?state=forged&code=abc", nil)
	r.AddCookie(&http.Cookie{Name: "auth_state", Value: "issued"})
	w := httptest.NewRecorder()
	h.Callback(w, r)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "An error occurred")
}

func TestAuthUserInfo_NoSession(t *testing.T) {
	t.Parallel()

	h, _ := newAuthHandler(t)

	r := httptest.NewRequest(http.MethodGet, "/user-info", nil)
	w := httptest.NewRecorder()
	h.UserInfo(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "JWT or sub not found please login first", w.Body.String())
}

func TestAuthUserInfo_ShowsSubAndToken(t *testing.T) {
	t.Parallel()

	h, sessions := newAuthHandler(t)
	token := sessions.Create("auth0|abc", "raw-jwt")

	r := httptest.NewRequest(http.MethodGet, "/user-info", nil)
	r.AddCookie(&http.Cookie{Name: "session", Value: token})
	w := httptest.NewRecorder()
	h.UserInfo(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ID: auth0|abc")
	assert.Contains(t, w.Body.String(), "JWT: raw-jwt")
}

func TestAuthLogout_DropsSessionAndRedirects(t *testing.T) {
	t.Parallel()

	h, sessions := newAuthHandler(t)
	token := sessions.Create("auth0|abc", "raw-jwt")

	r := httptest.NewRequest(http.MethodGet, "/logout", nil)
	r.AddCookie(&http.Cookie{Name: "session", Value: token})
	w := httptest.NewRecorder()
	h.Logout(w, r)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Nil(t, sessions.Get(token), "session should be deleted")

	loc, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "tenant.auth.example.com", loc.Host)
	assert.Equal(t, "/v2/logout", loc.Path)
	assert.Equal(t, "http://example.com", loc.Query().Get("returnTo"))
}
