package kvconfig

import (
	"errors"
	"fmt"
)

// Error definitions for kvconfig package.
var (
	// Error kinds, matched with errors.Is against a *ConfigError.
	ErrIO         = errors.New("IO error")
	ErrParse      = errors.New("Parse error")
	ErrValidation = errors.New("Validation error")

	// Parse failure reasons.
	ErrExpectedKeyValue = errors.New("Expected KEY=VALUE format")
	ErrEmptyKey         = errors.New("Key cannot be empty")
	ErrDuplicateKey     = errors.New("Duplicate key")
)

// Kind identifies which case of ConfigError is active.
type Kind int

// Available error kinds.
const (
	KindIO Kind = iota
	KindParse
	KindValidation
)

// String returns the display prefix of the kind.
func (k Kind) String() string {
	switch k {
	case KindIO:
		return ErrIO.Error()
	case KindParse:
		return ErrParse.Error()
	case KindValidation:
		return ErrValidation.Error()
	default:
		return "unknown error"
	}
}

// ConfigError is the single error type returned by reading, parsing and
// validating a configuration. Only the fields of the active Kind are set.
type ConfigError struct {
	Kind Kind

	// IO failure.
	Path string
	Err  error

	// Parse failure.
	Line   int
	Reason error
	Detail string

	// Validation failure.
	Key string
}

// NewIOError wraps a file access failure.
func NewIOError(path string, err error) *ConfigError {
	return &ConfigError{Kind: KindIO, Path: path, Err: err}
}

func newParseError(line int, reason error, detail string) *ConfigError {
	return &ConfigError{Kind: KindParse, Line: line, Reason: reason, Detail: detail}
}

func newValidationError(key string) *ConfigError {
	return &ConfigError{Kind: KindValidation, Key: key}
}

// Message returns the error description without the kind prefix.
func (e *ConfigError) Message() string {
	switch e.Kind {
	case KindIO:
		return fmt.Sprint(e.Err)
	case KindParse:
		if e.Detail != "" {
			return fmt.Sprintf("Line %d: %s: %s", e.Line, e.Reason, e.Detail)
		}
		return fmt.Sprintf("Line %d: %s", e.Line, e.Reason)
	case KindValidation:
		return fmt.Sprintf("Missing required key: %s", e.Key)
	default:
		return ""
	}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message())
}

// Is reports whether target is the sentinel of the active kind or,
// for parse failures, the reason.
func (e *ConfigError) Is(target error) bool {
	switch target {
	case ErrIO:
		return e.Kind == KindIO
	case ErrParse:
		return e.Kind == KindParse
	case ErrValidation:
		return e.Kind == KindValidation
	}
	return e.Kind == KindParse && e.Reason == target
}

// Unwrap returns the underlying file access failure, if any.
func (e *ConfigError) Unwrap() error {
	return e.Err
}
