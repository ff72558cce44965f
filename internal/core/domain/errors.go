package domain

import "errors"

var (
	// ErrNotFound is returned by repositories when a lookup, update or
	// delete targets a row that does not exist. Handlers wrap it with the
	// resource name before it reaches the client.
	ErrNotFound = errors.New("not found")

	// ErrEmailExists signals a registration against an already-taken email.
	// Raised from the storage uniqueness constraint, not a pre-read.
	ErrEmailExists = errors.New("email already exists")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so callers cannot tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingFields signals a create request missing required fields.
	ErrMissingFields = errors.New("missing required fields")
)
