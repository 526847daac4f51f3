package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/forgo/hangar/internal/model"
	"github.com/forgo/hangar/pkg/jwks"
)

// TokenVerifier defines the interface for bearer token validation
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (*jwks.Claims, error)
}

// Auth returns a middleware that validates bearer tokens and stores the
// token's subject in the request context.
func Auth(verifier TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token from Authorization header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				model.NewUnauthorizedError("Authorization header is missing").WriteJSON(w)
				return
			}

			// Check Bearer prefix
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				model.NewUnauthorizedError("Authorization header must be a Bearer token").WriteJSON(w)
				return
			}

			token := parts[1]

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				switch {
				case errors.Is(err, jwks.ErrTokenExpired):
					model.NewUnauthorizedError("Token expired").WriteJSON(w)
				case errors.Is(err, jwks.ErrInvalidSignature):
					model.NewUnauthorizedError("Invalid token signature").WriteJSON(w)
				default:
					model.NewUnauthorizedError("Invalid token").WriteJSON(w)
				}
				return
			}
			if claims.Subject == "" {
				model.NewUnauthorizedError("Invalid token").WriteJSON(w)
				return
			}

			ctx := context.WithValue(r.Context(), SubjectKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSubject extracts the authenticated subject from context
func GetSubject(ctx context.Context) string {
	if sub, ok := ctx.Value(SubjectKey).(string); ok {
		return sub
	}
	return ""
}
