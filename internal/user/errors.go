package user

import "errors"

var (
	// ErrDuplicateUser signals a registration attempt reusing an existing
	// username or email.
	ErrDuplicateUser = errors.New("a user with that username and/or email already exists")

	// ErrNotFound signals a lookup for a user that does not exist.
	ErrNotFound = errors.New("user not found")
)
