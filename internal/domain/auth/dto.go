package auth

import (
	"time"

	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=255"`
}

func (r *LoginRequest) Validate() error {
	return validator.Struct(r)
}

type TokenResponse struct {
	AccessToken string          `json:"accessToken"`
	TokenType   string          `json:"tokenType"`
	ExpiresAt   int64           `json:"expiresAt"`
	Session     SessionResponse `json:"session"`
}

type SessionResponse struct {
	AdminID   string `json:"adminId"`
	Email     string `json:"email"`
	IssuedAt  string `json:"issuedAt"`
	ExpiresAt string `json:"expiresAt"`
}

func NewSessionResponse(s Session) SessionResponse {
	return SessionResponse{
		AdminID:   s.AdminID,
		Email:     s.Email,
		IssuedAt:  s.IssuedAt.UTC().Format(time.RFC3339),
		ExpiresAt: s.ExpiresAt.UTC().Format(time.RFC3339),
	}
}
