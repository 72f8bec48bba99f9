package report

import "errors"

// Error definitions for report package.
var (
	ErrUnknownFormat = errors.New("unknown output format")
	ErrRender        = errors.New("failed to render configuration")
	ErrDotenvKey     = errors.New("key is not a valid dotenv name")
	ErrDotenvValue   = errors.New("value does not survive dotenv encoding")
)
