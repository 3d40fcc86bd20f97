package auth

import "errors"

var (
	// ErrMissingCredentials is returned by Login when the username or
	// password field is empty.
	ErrMissingCredentials = errors.New("missing username or password")

	// ErrInvalidCredentials is returned when the username is unknown or the
	// password does not match. The two cases are deliberately
	// indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrTokenInvalid covers every token validation failure: bad signature,
	// malformed payload, expired, wrong algorithm. Callers get no further
	// detail so validation internals never leak to clients.
	ErrTokenInvalid = errors.New("invalid token")
)
