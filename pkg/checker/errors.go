package checker

import "errors"

// Error definitions for checker package.
var (
	ErrLoadSettings   = errors.New("failed to load settings")
	ErrInvalidOptions = errors.New("invalid check options")
	ErrInvalidUTF8    = errors.New("stream did not contain valid UTF-8")
)
