package userservice

import "errors"

var (
	// ErrUsernameTaken is returned when registering an existing username.
	ErrUsernameTaken = errors.New("username already registered")
	// ErrInvalidCredentials is returned on a failed login or a wrong
	// current password.
	ErrInvalidCredentials = errors.New("incorrect username or password")
)
