package domain

import "time"

// Session binds a client cookie token to an authenticated user. Only the
// SHA-256 fingerprint of the token is persisted; the raw token lives in the
// client's cookie.
type Session struct {
	ID        string
	TokenHash string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session is past its expiry at the given time.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
