// Package entity defines the domain entities for the auth feature.
package entity

import (
	"net/url"
	"strings"
	"time"
)

// User represents a registered user in the system.
// It contains authentication credentials and profile data.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey" json:"id"`

	// Email is the user's email address used for authentication.
	// It is stored lowercased and must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Password is the bcrypt hash of the user's password.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null" json:"-"`

	// DisplayName is the name shown in the client. Defaults to the
	// local part of the email when not supplied at registration.
	DisplayName string `gorm:"size:255" json:"displayName"`

	// PhotoURL is the user's avatar. Defaults to a generated
	// placeholder keyed by the display name.
	PhotoURL string `gorm:"size:512" json:"photoURL"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}

// DefaultDisplayName returns the fallback display name for an email
// address: everything before the "@".
func DefaultDisplayName(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}

// DefaultPhotoURL returns the generated placeholder avatar URL for a
// display name.
func DefaultPhotoURL(displayName string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(displayName) + "&background=random"
}
