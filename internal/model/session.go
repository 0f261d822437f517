package model

import "time"

// SessionID uniquely identifies a browsing session
type SessionID string

// Session is an anonymous browsing session. There are no user accounts;
// a session exists only to scope draft state to one visitor
type Session struct {
	ID        SessionID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session has passed its expiry
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
