package entity

import "time"

// Session represents a server-side authentication session backing the
// HTTP session cookie. The ID is the opaque token handed to the client.
type Session struct {
	ID        string    // Opaque session token presented by the client
	UserID    uint      // Associated user ID
	UserAgent string    // Client's User-Agent header
	IPAddress string    // Client's IP address
	CreatedAt time.Time // Session creation time
	ExpiresAt time.Time // Session expiration time
}

// IsExpired returns true if the session has passed its expiration time.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsValid returns true if the session has not expired.
func (s *Session) IsValid() bool {
	return !s.IsExpired()
}
