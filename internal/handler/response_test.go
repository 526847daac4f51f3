package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestBaseURL(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "http://api.hangar.test/airplanes", nil)
	assert.Equal(t, "http://api.hangar.test", requestBaseURL(r))
}

func TestRequestBaseURL_ForwardedProto(t *testing.T) {
	t.Parallel()

	// Behind a TLS-terminating proxy the forwarded scheme wins
	r := httptest.NewRequest(http.MethodGet, "http://api.hangar.test/airplanes", nil)
	r.Header.Set("X-Forwarded-Proto", "https")
	assert.Equal(t, "https://api.hangar.test", requestBaseURL(r))
}

func TestPageParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 5, 0},
		{"explicit", "?limit=10&offset=20", 10, 20},
		{"zero limit ignored", "?limit=0", 5, 0},
		{"negative offset ignored", "?offset=-5", 5, 0},
		{"garbage ignored", "?limit=abc&offset=xyz", 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/airplanes"+tt.query, nil)
			limit, offset := pageParams(r)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestNextPageURL(t *testing.T) {
	t.Parallel()

	next := nextPageURL("http://api.hangar.test", "/cargo", 5, 0, 5, 12)
	require.NotNil(t, next)
	assert.Equal(t, "http://api.hangar.test/cargo?limit=5&offset=5", *next)
}

func TestNextPageURL_EndOfCollection(t *testing.T) {
	t.Parallel()

	assert.Nil(t, nextPageURL("http://api.hangar.test", "/cargo", 5, 10, 2, 12))
	assert.Nil(t, nextPageURL("http://api.hangar.test", "/cargo", 5, 0, 0, 0))
}
