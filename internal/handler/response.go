package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/forgo/hangar/internal/model"
)

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteError writes an API error response
func WriteError(w http.ResponseWriter, err *model.APIError) {
	err.WriteJSON(w)
}

// decodeRawBody decodes a JSON object body into its raw fields, preserving
// the exact key set so handlers can enforce required and forbidden keys.
func decodeRawBody(r *http.Request) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// isNull reports whether a raw JSON value is absent or the null literal
func isNull(v json.RawMessage) bool {
	return len(v) == 0 || string(v) == "null"
}

// requestBaseURL reconstructs the external base URL (scheme://host) for
// building self links
func requestBaseURL(r *http.Request) string {
	scheme := r.Header.Get("X-Forwarded-Proto")
	if scheme == "" {
		if r.TLS != nil {
			scheme = "https"
		} else {
			scheme = "http"
		}
	}
	return fmt.Sprintf("%s://%s", scheme, r.Host)
}

// pageParams reads limit and offset from the query string. Missing or
// unparseable values fall back to the defaults of 5 and 0.
func pageParams(r *http.Request) (limit, offset int) {
	limit, offset = 5, 0
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}

// nextPageURL builds the absolute URL of the next page, or nil when the
// current page already reaches the end of the collection.
func nextPageURL(base, path string, limit, offset, count, total int) *string {
	if offset+count >= total {
		return nil
	}
	next := fmt.Sprintf("%s%s?limit=%d&offset=%d", base, path, limit, offset+limit)
	return &next
}

// pathID parses a numeric entity ID from a path segment. A non-numeric
// segment can never name an existing record, so callers treat a false
// return as not-found rather than bad-request.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
