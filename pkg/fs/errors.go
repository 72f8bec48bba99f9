package fs

import "errors"

// Error definitions for fs package.
var (
	ErrIsDirectory = errors.New("path is a directory")
	ErrHomeDir     = errors.New("failed to determine home directory")
)
