// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account in the system.
// Email identifies the account for login; Nick is the public display handle.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:40;not null"`

	// Nick is the user's display handle.
	// It must be unique across all users.
	Nick string `gorm:"uniqueIndex;size:15;not null"`

	// Name is the user's real name.
	Name string `gorm:"size:15;not null"`

	// Password is the bcrypt hash of the user's password.
	// This should never store plaintext passwords and never leaves the server.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
