package models

import "time"

// AuthToken is the audit record of a session token issued at login.
// It is never consulted to decide whether a token is valid.
type AuthToken struct {
	UserID    string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the record is past its expiry at now.
func (t *AuthToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
