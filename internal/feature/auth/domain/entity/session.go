package entity

import "time"

// Session represents a server-side login session.
// Its ID doubles as the opaque credential carried by the client cookie.
type Session struct {
	ID        string    // Session token (64-character hex string from crypto/rand)
	UserID    uint      // Associated user ID
	CreatedAt time.Time // Session creation time
	ExpiresAt time.Time // Session expiration time
}

// IsExpired returns true if the session has passed its expiration time.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
