package middleware

import (
	"net/http"

	"github.com/forgo/hangar/internal/model"
)

// RequireJSON rejects any request whose Accept header is not exactly
// application/json. Responses are always JSON, so a client that will not
// take JSON gets a 406 before the handler runs.
func RequireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/json" {
			model.NewNotAcceptableError().WriteJSON(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}
