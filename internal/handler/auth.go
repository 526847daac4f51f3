package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/forgo/hangar/internal/service"
	"github.com/forgo/hangar/internal/session"
)

const (
	stateCookie   = "auth_state"
	sessionCookie = "session"
)

// AuthHandler drives the browser login flow: a welcome page, the redirect
// to the identity provider, the callback that completes the login, a page
// showing the caller's sub and raw JWT, and logout.
type AuthHandler struct {
	auth     *service.AuthService
	sessions *session.Store
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *service.AuthService, sessions *session.Store) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

// Index handles GET /: a welcome page with a login link
func (h *AuthHandler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = fmt.Fprint(w, `<!DOCTYPE html>
<html>
<head><title>Hangar</title></head>
<body>
<h1>Welcome to the Airplane and Cargo API</h1>
<p><a href="/login">Log in</a> to get a JWT for the protected endpoints.</p>
</body>
</html>`)
}

// Login handles GET /login: sets a state cookie and redirects to the
// identity provider
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   600,
	})

	http.Redirect(w, r, h.auth.AuthCodeURL(state), http.StatusFound)
}

// Callback handles GET /callback: completes the login, establishes a
// session, and sends the browser to /user-info
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(stateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != r.URL.Query().Get("state") {
		h.loginError(w, r, fmt.Errorf("state mismatch"))
		return
	}

	result, err := h.auth.Login(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		h.loginError(w, r, err)
		return
	}

	token := h.sessions.Create(result.Subject, result.IDToken)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
	// Clear the state cookie, the flow is done
	http.SetCookie(w, &http.Cookie{
		Name:   stateCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	http.Redirect(w, r, "/user-info", http.StatusFound)
}

// UserInfo handles GET /user-info: shows the logged-in sub and the raw JWT
// to use as a bearer token
func (h *AuthHandler) UserInfo(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)
	if sess == nil {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = fmt.Fprint(w, "JWT or sub not found please login first")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = fmt.Fprintf(w, "ID: %s<br>JWT: %s", sess.Sub, sess.IDToken)
}

// Logout handles GET /logout: drops the session and sends the browser to
// the provider's logout endpoint
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		h.sessions.Delete(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:   sessionCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	http.Redirect(w, r, h.auth.LogoutURL(requestBaseURL(r)), http.StatusFound)
}

// session resolves the session cookie, returning nil when there is no
// valid session
func (h *AuthHandler) session(r *http.Request) *session.Session {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	return h.sessions.Get(cookie.Value)
}

// loginError reports a failed login attempt. The browser mid-flow gets
// plain text, not the JSON error shape.
func (h *AuthHandler) loginError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("login failed",
		slog.Any("error", err),
		slog.String("remote_addr", r.RemoteAddr),
	)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = fmt.Fprintf(w, "An error occurred: %v", err)
}
