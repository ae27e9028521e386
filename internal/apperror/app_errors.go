package apperror

import "errors"

var (
	// ErrValidation marks malformed input: a bad board shape, an out-of-range wager or coordinate.
	ErrValidation = errors.New("validation error")
	// ErrTransition marks an operation invoked from an incompatible session phase.
	ErrTransition = errors.New("invalid transition")
	// ErrExternalCall marks a failed call to the board generator or the history storage.
	ErrExternalCall = errors.New("external call failed")

	ErrNotFound           = errors.New("not found")
	ErrNoGame             = errors.New("no game in progress")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrUserExists         = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
