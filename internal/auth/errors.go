package auth

import "errors"

var (
	// ErrInvalidCredentials is returned for both unknown usernames and wrong
	// passwords so responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrTokenExpired means the token was well formed and correctly signed but
	// its expiry has passed.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid covers every other verification failure: bad signature,
	// wrong algorithm, malformed structure.
	ErrTokenInvalid = errors.New("invalid token")
)
