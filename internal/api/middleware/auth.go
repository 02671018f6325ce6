package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"race_timing/internal/common"
	"race_timing/internal/common/security"
)

type contextKey string

const EmailCtxKey contextKey = "email"

// Authenticator rejects requests whose bearer token is missing, invalid or
// expired, and stores the token's email claim in the request context.
func Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context()) // Extracts token from Authorization header

		if err != nil || token == nil {
			common.RespondWithError(w, http.StatusUnauthorized, "Authorization token required")
			return
		}

		email, err := security.GetEmailFromClaims(claims)
		if err != nil {
			common.RespondWithError(w, http.StatusUnauthorized, "Invalid token claims: "+err.Error())
			return
		}

		ctx := context.WithValue(r.Context(), EmailCtxKey, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetEmailFromContext returns the authenticated user's email.
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailCtxKey).(string)
	return email, ok
}
