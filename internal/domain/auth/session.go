package auth

import (
	"context"
	"time"
)

// Session is the authenticated admin behind a request. It is built by the
// session guard from a verified token and carried on the request context.
type Session struct {
	AdminID   string
	Email     string
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

type sessionKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns ErrSessionRequired when no session was attached.
func SessionFromContext(ctx context.Context) (Session, error) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	if !ok {
		return Session{}, ErrSessionRequired
	}
	return s, nil
}
