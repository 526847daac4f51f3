// Package handler implements the HTTP endpoints of the Hangar API.
//
// Handlers decode and shape-check request bodies, call the service layer,
// and encode responses. Domain failures come back as service sentinels and
// are translated to HTTP responses in one place, MapServiceError, so a
// given failure always produces the same status and message regardless of
// endpoint.
//
// All API errors share the wire shape {"Error": "message"}. The browser
// login flow (/, /login, /callback, /user-info, /logout) responds with
// HTML or plain text instead, matching what a browser expects mid-flow.
package handler
