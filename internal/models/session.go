package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is the stateless session carried inside a signed token.
// Timestamps are epoch milliseconds.
type Session struct {
	UID       string `json:"uid"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"`
	ExpiresAt int64  `json:"expires_at"`
}

// NewSession builds a session for user valid for ttl starting at now.
func NewSession(user *UserDB, now time.Time, ttl time.Duration) Session {
	return Session{
		UID:       user.UID.String(),
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: now.UnixMilli(),
		ExpiresAt: now.Add(ttl).UnixMilli(),
	}
}

// Expired reports whether the session is expired at now.
func (s Session) Expired(now time.Time) bool {
	return s.ExpiresAt <= now.UnixMilli()
}

// UserID parses the session uid.
func (s Session) UserID() (uuid.UUID, error) {
	return uuid.Parse(s.UID)
}

// AuthContext is the verified identity threaded through a request.
// Both fields are nil for anonymous requests.
type AuthContext struct {
	User    *UserDB
	Session *Session
}

// Authenticated reports whether the request carries a verified user.
func (a AuthContext) Authenticated() bool {
	return a.User != nil && a.Session != nil
}

// AuthResult is the payload of a successful auth operation.
type AuthResult struct {
	Message string      `json:"message"`
	User    *PublicUser `json:"user,omitempty"`
	Token   string      `json:"token,omitempty"`
}
