package jwt

import (
	"errors"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const sessionTokenType = "session"

var ErrNotSessionToken = errors.New("not a session token")

// SessionClaims are the claims carried by a session token.
type SessionClaims struct {
	AdminID   string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type Service interface {
	GenerateSessionToken(adminID string, email string) (token string, claims SessionClaims, err error)
	ParseSessionClaims(token jwt.Token) (SessionClaims, error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(token string, expiresAt time.Time)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	sessionExpiration time.Duration
	tokenAuth         *jwtauth.JWTAuth
	revokedTokens     map[string]int64
	mu                sync.RWMutex
	now               func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, sessionExpiration time.Duration) Service {
	return &JWTService{
		sessionExpiration: sessionExpiration,
		tokenAuth:         jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:     make(map[string]int64),
		now:               time.Now,
	}
}

func (j *JWTService) GenerateSessionToken(adminID string, email string) (string, SessionClaims, error) {
	now := j.now().Truncate(time.Second)
	claims := SessionClaims{
		AdminID:   adminID,
		Email:     email,
		IssuedAt:  now,
		ExpiresAt: now.Add(j.sessionExpiration),
	}

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"sub":   adminID,
		"email": email,
		"type":  sessionTokenType,
		"iat":   claims.IssuedAt.Unix(),
		"exp":   claims.ExpiresAt.Unix(),
	})
	if err != nil {
		return "", SessionClaims{}, err
	}
	return tokenString, claims, nil
}

// ParseSessionClaims reads the claims of an already verified token.
func (j *JWTService) ParseSessionClaims(token jwt.Token) (SessionClaims, error) {
	tokenType, ok := token.Get("type")
	if !ok || tokenType != sessionTokenType {
		return SessionClaims{}, ErrNotSessionToken
	}

	email, _ := token.Get("email")
	emailStr, ok := email.(string)
	if !ok || token.Subject() == "" {
		return SessionClaims{}, ErrNotSessionToken
	}

	return SessionClaims{
		AdminID:   token.Subject(),
		Email:     emailStr,
		IssuedAt:  token.IssuedAt(),
		ExpiresAt: token.Expiration(),
	}, nil
}

// RevokeToken records token as revoked until it would have expired anyway.
// Entries past their expiry are pruned on each call.
func (j *JWTService) RevokeToken(token string, expiresAt time.Time) {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.now().Unix()
	for t, exp := range j.revokedTokens {
		if exp <= now {
			delete(j.revokedTokens, t)
		}
	}
	j.revokedTokens[token] = expiresAt.Unix()
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}
