package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequireJSON_Accepted(t *testing.T) {
	t.Parallel()

	called := false
	handler := RequireJSON(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodGet, "/airplanes", nil)
	r.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if !called {
		t.Error("handler was not called")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestRequireJSON_Rejected(t *testing.T) {
	t.Parallel()

	// The check is exact: wildcards do not count as asking for JSON
	accepts := []string{"", "*/*", "text/html", "application/json; q=0.9"}

	for _, accept := range accepts {
		handler := RequireJSON(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Errorf("handler called for Accept %q", accept)
		}))

		r := httptest.NewRequest(http.MethodGet, "/airplanes", nil)
		if accept != "" {
			r.Header.Set("Accept", accept)
		}
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		if w.Code != http.StatusNotAcceptable {
			t.Errorf("Accept %q: expected 406, got %d", accept, w.Code)
		}
		if msg := decodeError(t, w.Body.Bytes()); msg != "Unsupported response type" {
			t.Errorf("Accept %q: unexpected message %q", accept, msg)
		}
	}
}
