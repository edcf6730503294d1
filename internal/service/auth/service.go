package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Admin is the single configured back-office account.
type Admin struct {
	ID           string
	Email        string
	PasswordHash string
}

type AuthServiceImpl struct {
	admin      Admin
	jwtService jwt.Service
}

func NewAuthService(admin Admin, jwtService jwt.Service) auth.AuthService {
	admin.Email = strings.ToLower(strings.TrimSpace(admin.Email))
	return &AuthServiceImpl{
		admin:      admin,
		jwtService: jwtService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	emailMatches := subtle.ConstantTimeCompare([]byte(email), []byte(s.admin.Email)) == 1
	// the hash is checked even for an unknown email
	passwordErr := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(req.Password))
	if !emailMatches || passwordErr != nil {
		slog.Warn("login rejected", "email", email)
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	token, claims, err := s.jwtService.GenerateSessionToken(s.admin.ID, s.admin.Email)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate session token: %w", err)
	}

	slog.Info("session opened", "admin_id", s.admin.ID)
	return auth.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   claims.ExpiresAt.Unix(),
		Session: auth.NewSessionResponse(auth.Session{
			AdminID:   claims.AdminID,
			Email:     claims.Email,
			IssuedAt:  claims.IssuedAt,
			ExpiresAt: claims.ExpiresAt,
		}),
	}, nil
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context) error {
	session, err := auth.SessionFromContext(ctx)
	if err != nil {
		return err
	}

	s.jwtService.RevokeToken(session.Token, session.ExpiresAt)
	slog.Info("session closed", "admin_id", session.AdminID)
	return nil
}

// CurrentSession implements auth.AuthService.
func (s *AuthServiceImpl) CurrentSession(ctx context.Context) (auth.SessionResponse, error) {
	session, err := auth.SessionFromContext(ctx)
	if err != nil {
		return auth.SessionResponse{}, err
	}
	return auth.NewSessionResponse(session), nil
}
