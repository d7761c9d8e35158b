// Package common defines shared sentinel errors and small helpers used
// across payledger layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Auth errors. Login is a single-attempt check; all three are fatal
	// for the session.
	ErrNoUsers      = errors.New("no user accounts found")
	ErrUserNotFound = errors.New("user id not found")
	ErrBadPassword  = errors.New("password does not match")
	ErrInvalidToken = errors.New("invalid token")

	// Validation errors raised before any store mutation.
	ErrDuplicateID = errors.New("id already exists")
	ErrInvalidRole = errors.New("invalid role")
)
