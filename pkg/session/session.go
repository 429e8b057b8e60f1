package session

import (
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

// CookieName is the cookie carrying the session handle issued at login.
const CookieName = "session_id"

type contextKey string

// UsernameContextKey holds the session-bound username for /auth handlers.
const UsernameContextKey contextKey = "username"

type Session struct {
	ID          string
	Username    string
	AccessToken string
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

type Repository interface {
	Create(username, accessToken string) (*Session, error)
	Get(id string) (*Session, error)
	Invalidate(id string) error
}
