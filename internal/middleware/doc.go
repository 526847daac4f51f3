// Package middleware provides HTTP middleware for the Hangar API.
//
// Core middleware:
//
//   - RequestID: tags each request with a unique identifier
//   - Logger: structured request logging via slog
//   - Recovery: turns panics into 500 responses
//   - CORS: cross-origin headers and preflight handling
//   - Auth: bearer token validation against the identity provider's JWKS
//   - RequireJSON: rejects requests that do not accept JSON responses
//
// After Auth, handlers read the caller's identity with GetSubject(ctx).
package middleware
