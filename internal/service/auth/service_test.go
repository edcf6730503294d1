package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret   = "test-secret-key-for-jwt"
	testPassword = "correct-horse-battery"
)

func newTestAuthService(t *testing.T) (auth.AuthService, jwt.Service) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	jwtService := jwt.NewJWTService(testSecret, time.Hour)
	admin := Admin{ID: "admin", Email: "Admin@Example.com", PasswordHash: string(hash)}
	return NewAuthService(admin, jwtService), jwtService
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _ := newTestAuthService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{Email: "admin@example.com", Password: testPassword})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, "admin", resp.Session.AdminID)
	assert.Equal(t, "admin@example.com", resp.Session.Email)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "admin@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(ctx, auth.LoginRequest{Email: "someone@example.com", Password: testPassword})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(ctx, auth.LoginRequest{Email: "admin@example.com"})
	assert.True(t, errors.Is(err, validator.ErrMissingField))
}

func TestAuthService_LogoutRevokesToken(t *testing.T) {
	svc, jwtService := newTestAuthService(t)

	err := svc.Logout(context.Background())
	assert.ErrorIs(t, err, auth.ErrSessionRequired)

	session := auth.Session{AdminID: "admin", Token: "issued-token", ExpiresAt: time.Now().Add(time.Hour)}
	ctx := auth.WithSession(context.Background(), session)

	current, err := svc.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", current.AdminID)

	require.NoError(t, svc.Logout(ctx))
	assert.True(t, jwtService.IsTokenRevoked("issued-token"))
}
