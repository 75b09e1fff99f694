// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("user already exists with this email")

	// ErrInvalidCredentials is returned when login fails. The same error
	// covers unknown email and wrong password so the response does not
	// leak which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionNotFound is returned when a session cannot be found by ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExpired is returned when attempting to use an expired session.
	ErrSessionExpired = errors.New("session has expired")

	// ErrPasswordTooShort is returned when a registration password does not meet the minimum length.
	ErrPasswordTooShort = errors.New("password must be 6 or more characters")
)
