package store

import (
	"errors"
)

var (
	// ErrNotFound is returned when a user or story id matches nothing.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail and ErrDuplicateUsername surface uniqueness
	// violations. The pre-insert lookups catch most of them; the unique
	// indexes catch the rest under concurrent registration.
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateUsername = errors.New("username already taken")
)
