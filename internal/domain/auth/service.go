package auth

import (
	"context"
)

type AuthService interface {
	// Login checks the configured admin credentials and opens a session
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	// Logout revokes the session attached to ctx
	Logout(ctx context.Context) error
	// CurrentSession describes the session attached to ctx
	CurrentSession(ctx context.Context) (SessionResponse, error)
}
