// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when attempting to create a user whose
	// email or nick collides with an existing account.
	ErrUserAlreadyExists = errors.New("email or nick already exists")

	// ErrInvalidCredentials is returned when email or password is incorrect.
	// It is deliberately the same for "no such user" and "wrong password"
	// so login responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrSessionNotFound is returned when a session token does not resolve
	// to a stored session.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExpired is returned when attempting to use an expired session.
	ErrSessionExpired = errors.New("session has expired")
)
