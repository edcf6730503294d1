package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guardedRouter(jwtService jwt.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
	r.Use(SessionRequired(jwtService))
	r.Get("/whoami", func(w http.ResponseWriter, r *http.Request) {
		session, err := auth.SessionFromContext(r.Context())
		if err != nil {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		w.Write([]byte(session.Email))
	})
	return r
}

func get(h http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSessionRequired(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	h := guardedRouter(jwtService)

	token, claims, err := jwtService.GenerateSessionToken("admin", "admin@example.com")
	require.NoError(t, err)

	rec := get(h, token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin@example.com", rec.Body.String())

	assert.Equal(t, http.StatusUnauthorized, get(h, "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(h, "not.a.jwt").Code)

	jwtService.RevokeToken(token, claims.ExpiresAt)
	assert.Equal(t, http.StatusUnauthorized, get(h, token).Code)
}

func TestSessionRequired_RejectsOtherTokenTypes(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	h := guardedRouter(jwtService)

	_, token, err := jwtService.JWTAuth().Encode(map[string]interface{}{
		"sub":  "admin",
		"type": "refresh",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, get(h, token).Code)
}

func TestSessionRequired_RejectsForeignSignature(t *testing.T) {
	h := guardedRouter(jwt.NewJWTService("test-secret", time.Hour))

	token, _, err := jwt.NewJWTService("other-secret", time.Hour).GenerateSessionToken("admin", "admin@example.com")
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, get(h, token).Code)
}
