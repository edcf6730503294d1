package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// SessionRequired guards a route group. It runs after jwtauth.Verifier,
// rejects missing, invalid, revoked and non-session tokens, and attaches the
// resulting auth.Session to the request context.
func SessionRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			raw := jwtauth.TokenFromHeader(r)
			if raw == "" {
				raw = jwtauth.TokenFromQuery(r)
			}
			if jwtService.IsTokenRevoked(raw) {
				response.HandleError(w, auth.ErrTokenRevoked)
				return
			}

			claims, err := jwtService.ParseSessionClaims(token)
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			session := auth.Session{
				AdminID:   claims.AdminID,
				Email:     claims.Email,
				Token:     raw,
				IssuedAt:  claims.IssuedAt,
				ExpiresAt: claims.ExpiresAt,
			}
			next.ServeHTTP(w, r.WithContext(auth.WithSession(r.Context(), session)))
		}
		return http.HandlerFunc(hfn)
	}
}
