// Package store implements the persistence layer: credentials,
// sessions, chat messages and per-user preferences, all backed by the
// shared gorm handle.
package store

import "errors"

var (
	// ErrDuplicateIdentity means the username or email is already taken.
	ErrDuplicateIdentity = errors.New("username or email already exists")
	// ErrInvalidCredentials covers both unknown username and wrong
	// password, deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidToken covers missing, unknown and expired session tokens.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
)
